package order

import (
	"fmt"

	"salesflow/internal/pkg/errs"
)

// QAOutcome is the tri-state quality result of a line item. The zero value
// means no decision has been recorded yet.
type QAOutcome int

const (
	QAPending QAOutcome = iota
	QAApproved
	QARejected
)

var qaOutcomeStrings = map[QAOutcome]string{
	QAPending:  "Pending",
	QAApproved: "Approved",
	QARejected: "Rejected",
}

// QAOutcomeFromApproval maps an approve/reject decision onto a QAOutcome.
func QAOutcomeFromApproval(approved bool) QAOutcome {
	if approved {
		return QAApproved
	}
	return QARejected
}

func ParseQAOutcome(s string) (QAOutcome, error) {
	for outcome, name := range qaOutcomeStrings {
		if name == s {
			return outcome, nil
		}
	}
	return QAPending, errs.NewValueIsInvalidErrorWithCause("qa outcome", fmt.Errorf("%q is not a valid outcome", s))
}

func (q QAOutcome) Validate() error {
	if _, ok := qaOutcomeStrings[q]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("qa outcome", fmt.Errorf("%d is not a valid outcome", q))
	}
	return nil
}

func (q QAOutcome) String() string {
	if name, ok := qaOutcomeStrings[q]; ok {
		return name
	}
	return "Unknown"
}

// IsApproved is true only for an explicit approval; pending and rejected both
// fail the Quality stage gate.
func (q QAOutcome) IsApproved() bool {
	return q == QAApproved
}
