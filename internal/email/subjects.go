package email

const (
	subjectLeadAssignedFmt = "New %s lead assigned: %s"
	subjectReplyFmt        = "Reply from %s"
)
