package domain

import (
	"fmt"
	"math"
	"strconv"
)

// JobType is the compensation scheme of a Job. It is a closed set: Hourly or Salary.
type JobType interface {
	isJobType()
	String() string
}

// Hourly pays Rate per hour worked.
type Hourly struct {
	Rate float64
}

// Salary pays a fixed Amount regardless of hours worked.
type Salary struct {
	Amount uint64
}

func (Hourly) isJobType() {}
func (Salary) isJobType() {}

func (h Hourly) String() string {
	return "Hourly(" + strconv.FormatFloat(h.Rate, 'f', -1, 64) + ")"
}

func (s Salary) String() string {
	return "Salary(" + strconv.FormatUint(s.Amount, 10) + ")"
}

// Job represents a position held by a Person and how it is paid.
type Job struct {
	Title string
	Type  JobType
}

// NewJob creates a Job.
func NewJob(title string, jobType JobType) *Job {
	return &Job{Title: title, Type: jobType}
}

// CalculateIncome returns the income for the given number of hours.
// Hourly income is truncated toward zero; salaried jobs ignore hours.
func (j *Job) CalculateIncome(hours int) int {
	switch t := j.Type.(type) {
	case Hourly:
		return int(t.Rate * float64(hours))
	case Salary:
		return int(t.Amount)
	default:
		panic(fmt.Sprintf("unknown job type %T", j.Type))
	}
}

// RaiseByAmount increases the hourly rate by amount, or the salary by amount
// truncated toward zero.
func (j *Job) RaiseByAmount(amount float64) {
	switch t := j.Type.(type) {
	case Hourly:
		j.Type = Hourly{Rate: t.Rate + amount}
	case Salary:
		j.Type = Salary{Amount: addToSalary(t.Amount, amount)}
	default:
		panic(fmt.Sprintf("unknown job type %T", j.Type))
	}
}

// RaiseByPercent scales pay by (1 + percent); 0.1 means ten percent.
func (j *Job) RaiseByPercent(percent float64) {
	switch t := j.Type.(type) {
	case Hourly:
		j.Type = Hourly{Rate: t.Rate * (1 + percent)}
	case Salary:
		salary := float64(t.Amount)
		j.Type = Salary{Amount: clampSalary(salary + salary*percent)}
	default:
		panic(fmt.Sprintf("unknown job type %T", j.Type))
	}
}

func (j *Job) String() string {
	return fmt.Sprintf("[Job: title:%s type:%s]", j.Title, j.Type)
}

// maxSalaryFloat is 2^64, the first float64 that no longer fits in a uint64.
const maxSalaryFloat float64 = 1 << 64

// addToSalary adds amount, truncated toward zero, in integer arithmetic.
// The result saturates at 0 and math.MaxUint64. NaN leaves the salary unchanged.
func addToSalary(salary uint64, amount float64) uint64 {
	delta := math.Trunc(amount)
	switch {
	case math.IsNaN(delta):
		return salary
	case delta >= 0:
		if delta >= maxSalaryFloat {
			return math.MaxUint64
		}
		d := uint64(delta)
		if salary > math.MaxUint64-d {
			return math.MaxUint64
		}
		return salary + d
	default:
		if -delta >= maxSalaryFloat {
			return 0
		}
		d := uint64(-delta)
		if d >= salary {
			return 0
		}
		return salary - d
	}
}

// clampSalary truncates toward zero and saturates at 0 and math.MaxUint64.
func clampSalary(v float64) uint64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= maxSalaryFloat:
		return math.MaxUint64
	}
	return uint64(v)
}
