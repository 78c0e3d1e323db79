package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// MinimumAssociationAge is the age from which a person may hold a job or a spouse.
const MinimumAssociationAge = 16

// Person is an individual with an optional job and an optional spouse.
// Name and age are fixed at construction.
type Person struct {
	id        string
	firstName string
	lastName  string
	age       int

	job    *Job
	spouse *Person // not owned; the spouse usually points back
}

// NewPerson creates a Person with a fresh identifier.
func NewPerson(firstName, lastName string, age int) *Person {
	return &Person{
		id:        uuid.NewString(),
		firstName: firstName,
		lastName:  lastName,
		age:       age,
	}
}

func (p *Person) ID() string        { return p.id }
func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string  { return p.lastName }
func (p *Person) Age() int          { return p.age }

// Job returns the current job, or nil.
func (p *Person) Job() *Job {
	return p.job
}

// SetJob replaces the job (nil clears it). Ignored for people younger than MinimumAssociationAge.
func (p *Person) SetJob(job *Job) {
	if p.age < MinimumAssociationAge {
		return
	}
	p.job = job
}

// Spouse returns the current spouse, or nil.
func (p *Person) Spouse() *Person {
	return p.spouse
}

// SetSpouse replaces the spouse (nil clears it). Ignored for people younger than
// MinimumAssociationAge. Only this side of the relationship is updated.
func (p *Person) SetSpouse(spouse *Person) {
	if p.age < MinimumAssociationAge {
		return
	}
	p.spouse = spouse
}

// String describes the person. The spouse is named by first name only.
func (p *Person) String() string {
	jobStr := "nil"
	if p.job != nil {
		jobStr = p.job.String()
	}
	spouseStr := "nil"
	if p.spouse != nil {
		spouseStr = p.spouse.firstName
	}
	return fmt.Sprintf("[Person: firstName:%s lastName:%s age:%d job:%s spouse:%s]",
		p.firstName, p.lastName, p.age, jobStr, spouseStr)
}
