package hermes

const (
	StreamName   = "CONCORD_EVENTS"
	StreamMaxAge = "168h" // 7 days

	subjectPrefix = "concord."
)

func SubjectComputeCompleted(computationID string) string {
	return subjectPrefix + "compute." + computationID + ".completed"
}

func SubjectComputeFailed(computationID string) string {
	return subjectPrefix + "compute." + computationID + ".failed"
}
