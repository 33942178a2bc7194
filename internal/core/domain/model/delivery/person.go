package delivery

import (
	"errors"
	"fmt"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"
)

var (
	// ErrPersonIsNotConstructed is returned when a Person was not created
	// through NewPerson or RestorePerson.
	ErrPersonIsNotConstructed = errors.New("Person must be created via NewPerson constructor")

	// ErrPersonNameIsRequired is returned when the person's name is empty.
	ErrPersonNameIsRequired = errs.NewValueIsRequiredError("person name")

	// ErrPersonNotEligible is returned when matching attempts to claim a
	// person who is inactive or already busy.
	ErrPersonNotEligible = errors.New("delivery person is not eligible for matching")
)

// Person is a delivery person whose two flags, is_active and is_available,
// are the sole eligibility filter for matching. Matching claims a person by
// marking them busy inside the matching transaction; the claim is released
// when their assignment reaches delivered.
type Person struct {
	id          kernel.UUID
	name        string
	isActive    bool
	isAvailable bool

	isConstructed bool
}

// NewPerson creates a delivery person with validation.
func NewPerson(id kernel.UUID, name string, isActive, isAvailable bool) (*Person, error) {
	p := &Person{
		isActive:      isActive,
		isAvailable:   isAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePerson reconstructs a Person from persistence.
func RestorePerson(id kernel.UUID, name string, isActive, isAvailable bool) (*Person, error) {
	return NewPerson(id, name, isActive, isAvailable)
}

// Validate ensures the Person was properly constructed.
func (p *Person) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPersonIsNotConstructed
	}
	return nil
}

// ID returns the person's unique identifier.
func (p *Person) ID() kernel.UUID {
	return p.id
}

// Name returns the person's display name.
func (p *Person) Name() string {
	return p.name
}

// IsActive reports whether the person is active in the delivery pool.
func (p *Person) IsActive() bool {
	return p.isActive
}

// IsAvailable reports whether the person is free to take an assignment.
func (p *Person) IsAvailable() bool {
	return p.isAvailable
}

// IsEligible reports whether the person can be matched to a new order:
// active and available.
func (p *Person) IsEligible() bool {
	return p.isActive && p.isAvailable
}

// Claim marks the person busy for a new assignment. Returns
// ErrPersonNotEligible if the person is inactive or already claimed, which
// prevents double-booking within a matching transaction.
func (p *Person) Claim() error {
	if !p.IsEligible() {
		return fmt.Errorf("%w: %s", ErrPersonNotEligible, p.id)
	}

	p.isAvailable = false
	return nil
}

// Release frees the person after their assignment is delivered.
func (p *Person) Release() {
	p.isAvailable = true
}

func (p *Person) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Person) setName(name string) error {
	if name == "" {
		return ErrPersonNameIsRequired
	}
	p.name = name
	return nil
}
