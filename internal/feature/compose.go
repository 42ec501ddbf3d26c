// SPDX-License-Identifier: AGPL-3.0-or-later

package feature

// Compose builds the feature for one endpoint from the controller name, the
// document-global validation and exception labels, and the endpoint's own
// service calls. It is a pure function: scenario order is fixed as positive,
// then one scenario per validation label in document order, then exceptions
// in document order, then service calls in endpoint order. Empty categories
// contribute zero scenarios.
func Compose(controllerName, endpointName string, validations, exceptions, serviceCalls []string) Feature {
	f := Feature{Title: endpointName + " endpoint in " + controllerName}

	f.Scenarios = append(f.Scenarios, Scenario{
		Name: "Successful call to " + endpointName,
		Steps: []StepLine{
			step(KeywordGiven, "valid input for "+endpointName),
			step(KeywordWhen, "the API is called"),
			step(KeywordThen, "the response should indicate success"),
		},
	})

	for _, label := range validations {
		f.Scenarios = append(f.Scenarios, Scenario{
			Name: "Validation error - " + label,
			Steps: []StepLine{
				step(KeywordGiven, "invalid input that triggers "+label),
				step(KeywordWhen, "the API is called"),
				step(KeywordThen, "the response should indicate a validation error for "+label),
			},
		})
	}

	for _, label := range exceptions {
		f.Scenarios = append(f.Scenarios, Scenario{
			Name: "Exception - " + label,
			Steps: []StepLine{
				step(KeywordGiven, "a situation that causes "+label),
				step(KeywordWhen, "the API is called"),
				step(KeywordThen, "the response should indicate an error for "+label),
			},
		})
	}

	for _, call := range serviceCalls {
		f.Scenarios = append(f.Scenarios, Scenario{
			Name: "Dependency call - " + call,
			Steps: []StepLine{
				step(KeywordGiven, "the API depends on "+call),
				step(KeywordWhen, "the API is called"),
				step(KeywordThen, "the response should reflect the result of "+call),
			},
		})
	}

	return f
}

func step(keyword, text string) StepLine {
	return StepLine{Keyword: keyword, Text: text}
}
