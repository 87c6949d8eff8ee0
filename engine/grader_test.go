package engine

import (
	"testing"

	"lms/models"
)

// makeKey builds an answer key with question ids 1..n and the given correct labels.
func makeKey(labels ...string) []models.Quiz {
	key := make([]models.Quiz, len(labels))
	for i, label := range labels {
		key[i] = models.Quiz{CorrectAnswer: label, CourseID: 1}
		key[i].ID = uint(i + 1)
	}
	return key
}

func TestGradeAllCorrect(t *testing.T) {
	key := makeKey("A", "B")
	result, err := Grade(map[uint]string{1: "A", 2: "B"}, key)
	if err != nil {
		t.Fatalf("grade failed: %v", err)
	}
	if result.Score != 2 || result.Total != 2 || result.Percentage != 100.0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestGradePartiallyCorrect(t *testing.T) {
	key := makeKey("A", "B")
	result, err := Grade(map[uint]string{1: "A", 2: "C"}, key)
	if err != nil {
		t.Fatalf("grade failed: %v", err)
	}
	if result.Score != 1 || result.Total != 2 || result.Percentage != 50.0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestGradeIsCaseSensitive(t *testing.T) {
	key := makeKey("A")
	result, err := Grade(map[uint]string{1: "a"}, key)
	if err != nil {
		t.Fatalf("grade failed: %v", err)
	}
	if result.Score != 0 {
		t.Fatalf("lowercase label must not match, got score %d", result.Score)
	}
}

func TestGradeRejectsMissingAnswer(t *testing.T) {
	key := makeKey("A", "B")
	if _, err := Grade(map[uint]string{1: "A"}, key); err != ErrIncompleteSubmission {
		t.Fatalf("expected ErrIncompleteSubmission, got %v", err)
	}
}

func TestGradeRejectsUnknownQuestionID(t *testing.T) {
	key := makeKey("A", "B")
	// Same cardinality but one id does not belong to the key.
	if _, err := Grade(map[uint]string{1: "A", 99: "B"}, key); err != ErrIncompleteSubmission {
		t.Fatalf("expected ErrIncompleteSubmission, got %v", err)
	}
}

func TestGradeRejectsExtraAnswer(t *testing.T) {
	key := makeKey("A", "B")
	if _, err := Grade(map[uint]string{1: "A", 2: "B", 3: "C"}, key); err != ErrIncompleteSubmission {
		t.Fatalf("expected ErrIncompleteSubmission, got %v", err)
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	key := makeKey("A", "B", "C", "D")
	answers := map[uint]string{1: "A", 2: "D", 3: "C", 4: "A"}

	first, err := Grade(answers, key)
	if err != nil {
		t.Fatalf("grade failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Grade(answers, key)
		if err != nil {
			t.Fatalf("grade failed: %v", err)
		}
		if again != first {
			t.Fatalf("grade not deterministic: %+v vs %+v", again, first)
		}
	}
	if first.Score < 0 || first.Score > first.Total {
		t.Fatalf("score out of range: %+v", first)
	}
}

func TestGradeEmptyKey(t *testing.T) {
	result, err := Grade(map[uint]string{}, nil)
	if err != nil {
		t.Fatalf("grade failed: %v", err)
	}
	if result.Score != 0 || result.Total != 0 || result.Percentage != 0 {
		t.Fatalf("unexpected result for empty key: %+v", result)
	}
}
