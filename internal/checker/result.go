// SPDX-License-Identifier: MPL-2.0

package checker

// SuccessMessage is the message of the synthetic result appended when no rule failed.
const SuccessMessage = "Everything checked successfully."

type (
	// Result is the outcome of one naming rule.
	Result struct {
		Passed  bool
		Message string
	}

	// Results is the ordered outcome of one validation call.
	Results struct {
		items []Result
	}
)

// Add appends a result.
func (r *Results) Add(result Result) {
	r.items = append(r.items, result)
}

// fail appends a failed result with message.
func (r *Results) fail(message string) {
	r.Add(Result{Passed: false, Message: message})
}

// All returns the results in the order they were recorded.
func (r Results) All() []Result {
	return append([]Result(nil), r.items...)
}

// Failures returns the failed results.
func (r Results) Failures() []Result {
	var failed []Result
	for _, res := range r.items {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether no rule failed.
func (r Results) OK() bool { return len(r.Failures()) == 0 }

// Len returns the number of results.
func (r Results) Len() int { return len(r.items) }
