package ledger

import (
	"fmt"
	"strings"

	"github.com/robinvdvleuten/beancount-household/ast"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	transferTagPrefix = "transfer"
	owedTagPrefix     = "owed"
	selfTagName       = "self"
	selfPayee         = "Self"
)

// Direction tells which way money moves in a transfer, seen from the journal
// owner's first posting.
type Direction int

const (
	DirectionTo Direction = iota
	DirectionFrom
)

func (d Direction) String() string {
	if d == DirectionFrom {
		return "from"
	}
	return "to"
}

// TransferRule describes the shape a transfer transaction with a given tag must
// have in the journal of one party.
type TransferRule struct {
	Tag             ast.Tag
	Direction       Direction
	Payee           string
	NarrationPrefix string
	Account         ast.Account
}

// OwedRule describes an owed tag: the party it names and the account prefixes
// postings on that party's behalf may use.
type OwedRule struct {
	Tag      ast.Tag
	Party    string
	Prefixes []string
}

// Conventions holds the static transfer and owed tables derived from the
// configured parties. Tables are built once and never modified.
type Conventions struct {
	parties   []string
	transfers map[string]map[ast.Tag]TransferRule // party -> tag -> rule
	owed      map[ast.Tag]OwedRule
}

// NewConventions builds the convention tables for the given parties.
func NewConventions(parties []string) *Conventions {
	c := &Conventions{
		parties:   slices.Clone(parties),
		transfers: make(map[string]map[ast.Tag]TransferRule, len(parties)),
		owed:      make(map[ast.Tag]OwedRule, 2*len(parties)),
	}

	for _, party := range parties {
		c.transfers[party] = transferTable(party, parties)

		by := OwedRule{
			Tag:      owedTag("by", party),
			Party:    party,
			Prefixes: []string{"Expenses:" + party, "Assets:" + party + ":Receivables"},
		}
		to := OwedRule{
			Tag:      owedTag("to", party),
			Party:    party,
			Prefixes: []string{"Income:" + party + ":GiftsReceived"},
		}
		c.owed[by.Tag] = by
		c.owed[to.Tag] = to
	}

	return c
}

func transferTable(party string, parties []string) map[ast.Tag]TransferRule {
	self := ast.Account(fmt.Sprintf("Assets:%s:Transfers:Self", party))
	rules := []TransferRule{
		{
			Tag:             transferTag(DirectionTo, selfTagName),
			Direction:       DirectionTo,
			Payee:           selfPayee,
			NarrationPrefix: "Transfer to self: ",
			Account:         self,
		},
		{
			Tag:             transferTag(DirectionFrom, selfTagName),
			Direction:       DirectionFrom,
			Payee:           selfPayee,
			NarrationPrefix: "Transfer from self: ",
			Account:         self,
		},
	}

	for _, other := range parties {
		// Transfers to one's own name are spelled "self".
		if other == party {
			continue
		}
		rules = append(rules,
			TransferRule{
				Tag:             transferTag(DirectionTo, other),
				Direction:       DirectionTo,
				Payee:           other,
				NarrationPrefix: fmt.Sprintf("Transfer to %s: ", other),
				Account:         ast.Account(fmt.Sprintf("Assets:%s:Transfers:From%s", other, party)),
			},
			TransferRule{
				Tag:             transferTag(DirectionFrom, other),
				Direction:       DirectionFrom,
				Payee:           other,
				NarrationPrefix: fmt.Sprintf("Transfer from %s: ", other),
				Account:         ast.Account(fmt.Sprintf("Assets:%s:Transfers:From%s", party, other)),
			},
		)
	}

	table := make(map[ast.Tag]TransferRule, len(rules))
	for _, rule := range rules {
		table[rule.Tag] = rule
	}
	return table
}

func transferTag(direction Direction, name string) ast.Tag {
	return ast.Tag(fmt.Sprintf("%s-%s-%s", transferTagPrefix, direction, strings.ToLower(name)))
}

func owedTag(kind, party string) ast.Tag {
	return ast.Tag(fmt.Sprintf("%s-%s-%s", owedTagPrefix, kind, strings.ToLower(party)))
}

// Parties returns the parties the tables were built for.
func (c *Conventions) Parties() []string {
	return slices.Clone(c.parties)
}

// Transfer looks up the transfer rule for tag in the journal of party.
func (c *Conventions) Transfer(party string, tag ast.Tag) (TransferRule, bool) {
	rule, ok := c.transfers[party][tag]
	return rule, ok
}

// Owed looks up an owed tag.
func (c *Conventions) Owed(tag ast.Tag) (OwedRule, bool) {
	rule, ok := c.owed[tag]
	return rule, ok
}

// TransferRules returns the transfer rules available to party, sorted by tag.
func (c *Conventions) TransferRules(party string) []TransferRule {
	table := c.transfers[party]
	tags := maps.Keys(table)
	slices.Sort(tags)

	rules := make([]TransferRule, 0, len(tags))
	for _, tag := range tags {
		rules = append(rules, table[tag])
	}
	return rules
}

// OwedRules returns the owed rules party may use, sorted by tag. Tags naming
// party itself are left out.
func (c *Conventions) OwedRules(party string) []OwedRule {
	tags := maps.Keys(c.owed)
	slices.Sort(tags)

	rules := make([]OwedRule, 0, len(tags))
	for _, tag := range tags {
		if rule := c.owed[tag]; rule.Party != party {
			rules = append(rules, rule)
		}
	}
	return rules
}
