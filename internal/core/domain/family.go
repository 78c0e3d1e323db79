package domain

import "github.com/google/uuid"

const (
	// MinimumParentAge must be exceeded by both spouses before a child can be added.
	MinimumParentAge = 21

	// StandardAnnualHours is the workload used to annualize hourly pay (40h x 50 weeks).
	StandardAnnualHours = 2000
)

// Family is a household of two spouses followed by their children.
type Family struct {
	id      string
	members []*Person
}

// NewFamily links the two spouses to each other and makes them the first two members.
// Linking goes through Person.SetSpouse, so a spouse under MinimumAssociationAge stays unlinked.
func NewFamily(spouse1, spouse2 *Person) *Family {
	spouse2.SetSpouse(spouse1)
	spouse1.SetSpouse(spouse2)

	return &Family{
		id:      uuid.NewString(),
		members: []*Person{spouse1, spouse2},
	}
}

func (f *Family) ID() string {
	return f.id
}

// Members returns the members in insertion order: spouse1, spouse2, then children.
func (f *Family) Members() []*Person {
	out := make([]*Person, len(f.members))
	copy(out, f.members)
	return out
}

// Member returns the member with the given ID.
func (f *Family) Member(id string) (*Person, bool) {
	for _, m := range f.members {
		if m.ID() == id {
			return m, true
		}
	}
	return nil, false
}

// HaveChild appends child unless either spouse is MinimumParentAge or younger.
func (f *Family) HaveChild(child *Person) bool {
	spouse1, spouse2 := f.members[0], f.members[1]
	if spouse1.Age() <= MinimumParentAge || spouse2.Age() <= MinimumParentAge {
		return false
	}

	f.members = append(f.members, child)
	return true
}

// HouseholdIncome sums the annual income of every employed member.
func (f *Family) HouseholdIncome() int {
	total := 0
	for _, person := range f.members {
		job := person.Job()
		if job == nil {
			continue
		}
		switch job.Type.(type) {
		case Hourly:
			total += job.CalculateIncome(StandardAnnualHours)
		case Salary:
			total += job.CalculateIncome(0)
		}
	}
	return total
}
