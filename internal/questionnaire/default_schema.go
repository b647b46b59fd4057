package questionnaire

// DefaultSchema is the resident profile questionnaire the app ships
// with. Category and question order drives both rendering and the
// progress breakdown, so entries are kept in display order.
func DefaultSchema() Schema {
	return Schema{
		{
			ID:          "personal",
			Title:       "Personal Details",
			Description: "Basic information about you",
			Questions: []Question{
				{ID: "full_name", Text: "Full name", Type: TypeText, Required: true},
				{ID: "personal_number", Text: "Personal number", Type: TypeNumber, Required: true},
				{ID: "birth_date", Text: "Date of birth", Type: TypeDate},
				{ID: "gender", Text: "Gender", Type: TypeSelect, Options: []string{"Male", "Female", "Other"}},
				{ID: "languages", Text: "Languages you speak", Type: TypeMultiSelect,
					Options: []string{"Hebrew", "English", "Russian", "Arabic", "Amharic", "French", "Spanish"}},
			},
		},
		{
			ID:          "service",
			Title:       "Service",
			Description: "Your unit and role",
			Questions: []Question{
				{ID: "unit", Text: "Unit", Type: TypeText},
				{ID: "role", Text: "Role", Type: TypeText},
				{ID: "service_start", Text: "Service start date", Type: TypeDate},
				{ID: "release_date", Text: "Expected release date", Type: TypeDate},
				{ID: "lone_soldier", Text: "Are you a lone soldier?", Type: TypeBoolean},
			},
		},
		{
			ID:          "household",
			Title:       "Life in the House",
			Description: "Day-to-day preferences",
			Questions: []Question{
				{ID: "room", Text: "Room number", Type: TypeNumber},
				{ID: "dietary", Text: "Dietary preferences", Type: TypeMultiSelect,
					Options: []string{"Kosher", "Vegetarian", "Vegan", "Gluten free", "None"}},
				{ID: "weekend_stay", Text: "Do you usually stay on weekends?", Type: TypeBoolean},
				{ID: "about_me", Text: "A few words about yourself", Type: TypeTextArea},
			},
		},
		{
			ID:          "contact",
			Title:       "Contact",
			Description: "How we can reach you",
			Questions: []Question{
				{ID: "phone", Text: "Phone number", Type: TypePhone, Required: true},
				{ID: "email", Text: "Email address", Type: TypeEmail},
				{ID: "emergency_name", Text: "Emergency contact name", Type: TypeText},
				{ID: "emergency_phone", Text: "Emergency contact phone", Type: TypePhone},
			},
		},
	}
}
