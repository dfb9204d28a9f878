package domain

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
)

const (
	AllowedUsersPolicyName = "Allowed Users"
	DecisionAllow          = "allow"
	AppTypeSelfHosted      = "self_hosted"
)

// AccessRule is one entry of a policy include list. Exactly one field is set.
type AccessRule struct {
	Email       *EmailRule       `json:"email,omitempty"`
	EmailDomain *EmailDomainRule `json:"email_domain,omitempty"`
}

type EmailRule struct {
	Email string `json:"email"`
}

type EmailDomainRule struct {
	Domain string `json:"domain"`
}

func NewEmailRule(email string) AccessRule {
	return AccessRule{Email: &EmailRule{Email: email}}
}

func NewEmailDomainRule(domain string) AccessRule {
	return AccessRule{EmailDomain: &EmailDomainRule{Domain: domain}}
}

// BuildAccessInclude turns the raw header values into policy rules: one
// email rule per comma separated address, in order, followed by a domain
// rule. Blank addresses are skipped; duplicates are kept.
func BuildAccessInclude(emails, domain string) []AccessRule {
	include := make([]AccessRule, 0)

	if emails != "" {
		addresses := lo.Compact(lo.Map(strings.Split(emails, ","), func(e string, _ int) string {
			return strings.TrimSpace(e)
		}))
		for _, email := range addresses {
			include = append(include, NewEmailRule(email))
		}
	}

	if domain != "" {
		include = append(include, NewEmailDomainRule(strings.TrimPrefix(domain, "@")))
	}

	return include
}

type AccessStatus string

const (
	AccessStatusCreated AccessStatus = "created"
	AccessStatusUpdated AccessStatus = "updated"
	AccessStatusFailed  AccessStatus = "failed"
	AccessStatusPartial AccessStatus = "partial"
)

// AccessResult is the outcome of access configuration. It is one of
// AccessCreated, AccessUpdated, AccessFailed or AccessPartial.
type AccessResult interface {
	Status() AccessStatus
	isAccessResult()
}

type AccessCreated struct {
	AppID string
}

type AccessUpdated struct {
	AppID string
}

// AccessFailed carries the vendor error body, or a message when the
// failure never reached the vendor.
type AccessFailed struct {
	Error any
}

type AccessPartial struct {
	AppID       string
	PolicyError any
}

func (AccessCreated) Status() AccessStatus { return AccessStatusCreated }
func (AccessUpdated) Status() AccessStatus { return AccessStatusUpdated }
func (AccessFailed) Status() AccessStatus  { return AccessStatusFailed }
func (AccessPartial) Status() AccessStatus { return AccessStatusPartial }

func (AccessCreated) isAccessResult() {}
func (AccessUpdated) isAccessResult() {}
func (AccessFailed) isAccessResult()  {}
func (AccessPartial) isAccessResult() {}

func (r AccessCreated) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status AccessStatus `json:"status"`
		AppID  string       `json:"appId"`
	}{r.Status(), r.AppID})
}

func (r AccessUpdated) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status AccessStatus `json:"status"`
		AppID  string       `json:"appId"`
	}{r.Status(), r.AppID})
}

func (r AccessFailed) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status AccessStatus `json:"status"`
		Error  any          `json:"error"`
	}{r.Status(), r.Error})
}

func (r AccessPartial) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status      AccessStatus `json:"status"`
		AppID       string       `json:"appId"`
		PolicyError any          `json:"policyError"`
	}{r.Status(), r.AppID, r.PolicyError})
}
