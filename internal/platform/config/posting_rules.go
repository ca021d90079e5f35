package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// Posting roles referenced by the report engine.
const (
	RoleCash               = "cash"
	RoleAccountsReceivable = "accounts_receivable"
	RoleAccountsPayable    = "accounts_payable"
)

//go:embed default_posting_rules.yaml
var defaultPostingRules []byte

// TaxRule places the tax line of an event.
type TaxRule struct {
	Role string      `yaml:"role"`
	Side domain.Side `yaml:"side"`
}

// PostingRule maps an event kind onto a debit role and a credit role.
type PostingRule struct {
	Debit  string   `yaml:"debit"`
	Credit string   `yaml:"credit"`
	Tax    *TaxRule `yaml:"tax,omitempty"`
}

// PostingRules is the mapping table used by the posting service: the chart to
// seed, account roles resolved to account codes, and one rule per event kind.
type PostingRules struct {
	Accounts []dto.CreateAccountRequest `yaml:"accounts"`
	Roles    map[string]string          `yaml:"roles"`
	Rules    map[string]PostingRule     `yaml:"rules"`
}

// RoleCode returns the account code bound to a role.
func (r *PostingRules) RoleCode(role string) (string, bool) {
	code, ok := r.Roles[role]
	return code, ok && code != ""
}

// Rule returns the rule for an event kind.
func (r *PostingRules) Rule(kind string) (PostingRule, bool) {
	rule, ok := r.Rules[kind]
	return rule, ok
}

// Validate checks the structure of the table. Roles are resolved against the
// chart only when an event is posted.
func (r *PostingRules) Validate() error {
	for i, acc := range r.Accounts {
		if strings.TrimSpace(acc.Code) == "" || strings.TrimSpace(acc.Name) == "" {
			return fmt.Errorf("accounts[%d]: code and name are required", i)
		}
		if !acc.AccountType.IsValid() {
			return fmt.Errorf("accounts[%d] %s: unknown type %q", i, acc.Code, acc.AccountType)
		}
	}
	for kind, rule := range r.Rules {
		if rule.Debit == "" || rule.Credit == "" {
			return fmt.Errorf("rule %s: debit and credit roles are required", kind)
		}
		if rule.Tax != nil {
			if rule.Tax.Role == "" {
				return fmt.Errorf("rule %s: tax role is required", kind)
			}
			if !rule.Tax.Side.IsValid() {
				return fmt.Errorf("rule %s: tax side %q must be DEBIT or CREDIT", kind, rule.Tax.Side)
			}
		}
	}
	return nil
}

// ParsePostingRules decodes and validates a YAML mapping table.
func ParsePostingRules(data []byte) (*PostingRules, error) {
	rules := &PostingRules{}
	if err := yaml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse posting rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid posting rules: %w", err)
	}
	return rules, nil
}

// DefaultPostingRules returns the built-in mapping table.
func DefaultPostingRules() *PostingRules {
	rules, err := ParsePostingRules(defaultPostingRules)
	if err != nil {
		panic(fmt.Sprintf("built-in posting rules are invalid: %v", err))
	}
	return rules
}

// LoadPostingRules reads the table from path, or returns the built-in table when path is empty.
func LoadPostingRules(path string) (*PostingRules, error) {
	if path == "" {
		return DefaultPostingRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read posting rules file %s: %w", path, err)
	}
	return ParsePostingRules(data)
}
