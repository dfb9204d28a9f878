// Package domain holds the request-scoped values that flow through a
// deployment: the inbound request, the deploy attempt state machine and the
// access rules.
package domain

import (
	"fmt"
	"slices"
	"strconv"
	"time"
)

// ProjectNotFoundCode is the vendor error code returned by the deployment
// endpoint when the target project does not exist yet.
const ProjectNotFoundCode = 8000007

type DeploymentRequest struct {
	ProjectName string `validate:"required"`
	Password    string
	Emails      string
	Domain      string
	Payload     []byte `validate:"min=1"`
}

// NewDeploymentRequest fills in a generated project name when none is given.
func NewDeploymentRequest(projectName, password, emails, domain string, payload []byte, now time.Time) *DeploymentRequest {
	if projectName == "" {
		projectName = DefaultProjectName(now)
	}
	return &DeploymentRequest{
		ProjectName: projectName,
		Password:    password,
		Emails:      emails,
		Domain:      domain,
		Payload:     payload,
	}
}

// DefaultProjectName returns site-<last 6 digits of the epoch millis>.
func DefaultProjectName(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return "site-" + millis
}

func (r *DeploymentRequest) WantsAccess() bool {
	return r.Emails != "" || r.Domain != ""
}

func SiteHost(projectName, pagesDomain string) string {
	return fmt.Sprintf("%s.%s", projectName, pagesDomain)
}

func SiteURL(projectName, pagesDomain string) string {
	return "https://" + SiteHost(projectName, pagesDomain)
}

// DeployState is the position of a single deploy call in the
// create-then-retry sequence.
type DeployState string

const (
	StateAttempting      DeployState = "ATTEMPTING"
	StateCreatingProject DeployState = "CREATING_PROJECT"
	StateRetrying        DeployState = "RETRYING"
	StateDone            DeployState = "DONE"
	StateFailed          DeployState = "FAILED"
)

// DeployAttempt tracks one deploy call. The transition table allows at most
// one project creation and one retry.
type DeployAttempt struct {
	ProjectName    string
	State          DeployState
	ProjectCreated bool
}

func NewDeployAttempt(projectName string) *DeployAttempt {
	return &DeployAttempt{
		ProjectName: projectName,
		State:       StateAttempting,
	}
}

func (a *DeployAttempt) Succeed() error {
	return a.transition(StateDone)
}

func (a *DeployAttempt) Fail() error {
	return a.transition(StateFailed)
}

func (a *DeployAttempt) BeginProjectCreation() error {
	return a.transition(StateCreatingProject)
}

// BeginRetry records that the project now exists and the upload is resent.
func (a *DeployAttempt) BeginRetry() error {
	if err := a.transition(StateRetrying); err != nil {
		return err
	}
	a.ProjectCreated = true
	return nil
}

func (a *DeployAttempt) IsTerminal() bool {
	return a.State == StateDone || a.State == StateFailed
}

func (a *DeployAttempt) transition(target DeployState) error {
	if err := a.canTransitionTo(target); err != nil {
		return err
	}
	a.State = target
	return nil
}

func (a *DeployAttempt) canTransitionTo(target DeployState) error {
	switch a.State {
	case StateAttempting:
		return a.allow(target, StateDone, StateCreatingProject, StateFailed)
	case StateCreatingProject:
		return a.allow(target, StateRetrying, StateFailed)
	case StateRetrying:
		return a.allow(target, StateDone, StateFailed)
	}
	return NewInvalidTransitionError(a.State, target)
}

func (a *DeployAttempt) allow(target DeployState, allowed ...DeployState) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return NewInvalidTransitionError(a.State, target)
}
