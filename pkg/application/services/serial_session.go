package services

import (
	"errors"
	"fmt"

	"github.com/asheth/orderdesk/pkg/domain/entities"
	domainservices "github.com/asheth/orderdesk/pkg/domain/services"
)

// ErrIncompleteSerials is returned by Save while any serial entry is still
// empty. The owning line item is left untouched.
var ErrIncompleteSerials = errors.New("all serial numbers must be entered")

// SerialSession is the transient working state of one serial reconciliation:
// exactly one entry per unit of the owning row's quantity. Nothing escapes
// the session except through Save; abandoning it leaves the row's serials as
// they were.
type SerialSession struct {
	item      *entities.LineItem
	generator *domainservices.SerialGenerator
	values    []string
}

// NewSerialSession opens a session seeded from the row's existing serials,
// resized to its current quantity: padded with empty entries when short,
// truncated when long. Truncation discards the excess entries; the current
// quantity is ground truth.
func NewSerialSession(item *entities.LineItem, generator *domainservices.SerialGenerator) *SerialSession {
	session := &SerialSession{
		item:      item,
		generator: generator,
	}
	session.values = resize(item.SerialNumbers, int(item.Quantity))
	return session
}

// Values returns a copy of the working entries
func (s *SerialSession) Values() []string {
	values := make([]string, len(s.values))
	copy(values, s.values)
	return values
}

// SetValue replaces the entry at index. Entries are not checked for
// uniqueness, within the session or across rows.
func (s *SerialSession) SetValue(index int, value string) error {
	if index < 0 || index >= len(s.values) {
		return fmt.Errorf("serial index %d out of range [0,%d)", index, len(s.values))
	}
	s.values[index] = value
	return nil
}

// AutoGenerate replaces every entry with generated serials sharing one
// randomized prefix and increasing numeric suffixes
func (s *SerialSession) AutoGenerate() {
	s.values = s.generator.Generate(len(s.values))
}

// Save copies the entries onto the owning line item and ends the session.
// If the row's quantity changed while the session was open, the entries are
// resized to the new quantity first. Fails without touching the item while
// any entry is empty.
func (s *SerialSession) Save() error {
	s.values = resize(s.values, int(s.item.Quantity))

	for _, value := range s.values {
		if value == "" {
			return ErrIncompleteSerials
		}
	}

	serials := make([]string, len(s.values))
	copy(serials, s.values)
	s.item.SerialNumbers = serials
	return nil
}

func resize(values []string, count int) []string {
	resized := make([]string, count)
	copy(resized, values)
	return resized
}
