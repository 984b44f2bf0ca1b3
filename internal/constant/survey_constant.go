package constant

const (
	MessageRoleAI   = "ai"
	MessageRoleUser = "user"

	SurveyStatusIncomplete = "Incomplete"
	SurveyStatusCompleted  = "Completed"

	DefaultSurveyProbes   = 3
	DefaultSurveyLength   = 120 // seconds
	DefaultSurveyLanguage = "English"
)

// SurveyLanguages are the display languages offered by the create form.
var SurveyLanguages = []string{"English", "Spanish", "French", "German", "Hindi", "Chinese"}

func IsValidMessageRole(role string) bool {
	return role == MessageRoleAI || role == MessageRoleUser
}

func IsValidSurveyStatus(status string) bool {
	return status == SurveyStatusIncomplete || status == SurveyStatusCompleted
}
