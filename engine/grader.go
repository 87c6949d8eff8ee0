package engine

import "lms/models"

// GradedResult summarizes one graded submission.
type GradedResult struct {
	Score      int
	Total      int
	Percentage float64
}

// Grade scores a submission against the course's answer key. It is pure:
// the key is iterated in its stored order and each answer is compared to
// the correct label with exact, case-sensitive equality.
//
// The submission must cover exactly the key's question ids — no missing
// and no extra entries — otherwise ErrIncompleteSubmission is returned.
func Grade(answers map[uint]string, key []models.Quiz) (GradedResult, error) {
	if len(answers) != len(key) {
		return GradedResult{}, ErrIncompleteSubmission
	}

	score := 0
	for _, question := range key {
		answer, ok := answers[question.ID]
		if !ok {
			return GradedResult{}, ErrIncompleteSubmission
		}
		if answer == question.CorrectAnswer {
			score++
		}
	}

	total := len(key)
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	return GradedResult{Score: score, Total: total, Percentage: percentage}, nil
}
