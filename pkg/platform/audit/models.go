package audit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategorySecurity covers authentication outcomes and throttling.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine validation activity.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	Action    AuditEvent
	// Decision is the outcome of the action ("valid", "rejected", "granted", ...).
	Decision string
	// Reason is the closed failure reason when Decision is a rejection.
	Reason string
	// Subject is the authenticated principal that triggered the action.
	Subject   string
	RequestID string
	// SubjectIDHash is the keyed hash of the evaluated identifier (see
	// SubjectHasher). Raw identifiers and birth dates never leave the service.
	SubjectIDHash string
	// Attributes carries non-PII details such as a province code.
	Attributes map[string]any
}

type AuditEvent string

const (
	EventIdentificationChecked AuditEvent = "identification_checked"
	EventAgeCalculated         AuditEvent = "age_calculated"

	EventLoginSucceeded AuditEvent = "login_succeeded"
	EventLoginFailed    AuditEvent = "login_failed"
	EventLoginThrottled AuditEvent = "login_throttled"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventLoginSucceeded: CategorySecurity,
	EventLoginFailed:    CategorySecurity,
	EventLoginThrottled: CategorySecurity,

	EventIdentificationChecked: CategoryOperations,
	EventAgeCalculated:         CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// SubjectHasher pseudonymizes external identifiers for audit events with a
// keyed HMAC-SHA256. Identifiers with a small keyspace, such as a cédula,
// cannot be recovered from the digest without the key.
type SubjectHasher struct {
	key []byte
}

func NewSubjectHasher(key string) *SubjectHasher {
	return &SubjectHasher{key: []byte(key)}
}

// Hash returns the hex digest of raw. Empty input and a nil hasher yield "".
func (h *SubjectHasher) Hash(raw string) string {
	if h == nil || raw == "" {
		return ""
	}
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
