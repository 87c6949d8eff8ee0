package engine

// Result is what a scored submission returns to the caller.
type Result struct {
	Score             int     `json:"score"`
	Total             int     `json:"total"`
	Percentage        float64 `json:"percentage"`
	Attempts          int     `json:"attempts"`
	CertificateEarned bool    `json:"certificate_earned"`

	// NewlyCertified is true only on the attempt that first earned the
	// certificate, so the caller can trigger issuance exactly once.
	NewlyCertified bool `json:"-"`
}

// Orchestrator coordinates grading, attempt-limit enforcement and
// certification for quiz submissions.
type Orchestrator struct {
	keys   AnswerKeyStore
	ledger AttemptLedger
}

func NewOrchestrator(keys AnswerKeyStore, ledger AttemptLedger) *Orchestrator {
	return &Orchestrator{keys: keys, ledger: ledger}
}

// Keys exposes the answer key store the orchestrator was built with.
func (o *Orchestrator) Keys() AnswerKeyStore { return o.keys }

// Ledger exposes the attempt ledger the orchestrator was built with.
func (o *Orchestrator) Ledger() AttemptLedger { return o.ledger }

// SubmitQuiz handles one submission end to end: load the answer key, reject
// exhausted or certified records before grading, grade, and record the
// attempt through the ledger. The ledger re-validates the record under its
// own lock, so the early check here is only a fast path for stale clients.
func (o *Orchestrator) SubmitQuiz(studentID, courseID uint, answers map[uint]string) (*Result, error) {
	key, err := o.keys.GetAnswerKey(courseID)
	if err != nil {
		return nil, err
	}

	rec, err := o.ledger.GetRecord(studentID, courseID)
	if err != nil {
		return nil, err
	}
	priorCertified := false
	if rec != nil {
		priorCertified = rec.CertificateEarned
		if rec.CertificateEarned {
			return nil, ErrAlreadyCertified
		}
		if rec.QuizAttempts >= MaxAttempts {
			return nil, ErrAttemptLimitExceeded
		}
	}

	graded, err := Grade(answers, key)
	if err != nil {
		return nil, err
	}

	updated, err := o.ledger.RecordAttempt(studentID, courseID, graded)
	if err != nil {
		return nil, err
	}

	return &Result{
		Score:             graded.Score,
		Total:             graded.Total,
		Percentage:        graded.Percentage,
		Attempts:          updated.QuizAttempts,
		CertificateEarned: updated.CertificateEarned,
		NewlyCertified:    updated.CertificateEarned && !priorCertified,
	}, nil
}
