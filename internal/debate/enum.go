package debate

type Action string

const (
	ActionRecommendTopics   Action = "recommend_topics"
	ActionGenerateArguments Action = "generate_arguments"
	ActionProvideFeedback   Action = "provide_feedback"
	ActionGenerateDebate    Action = "generate_debate"
)

var AllActions = []Action{
	ActionRecommendTopics,
	ActionGenerateArguments,
	ActionProvideFeedback,
	ActionGenerateDebate,
}

func (a Action) IsValid() bool {
	for _, v := range AllActions {
		if a == v {
			return true
		}
	}
	return false
}
