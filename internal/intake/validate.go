package intake

// ValidateSection reports whether every required field of section is set.
// Sections outside 1..6 never validate.
func ValidateSection(a AnswerSet, section Section) bool {
	switch section {
	case SectionPersonal:
		return a.FullName != "" && a.BirthDate != "" && a.Email != "" && a.Phone != "" && a.Gender != ""
	case SectionHealth:
		return true
	case SectionActivity:
		return a.ExperienceLevel != "" && a.TrainingLocation != ""
	case SectionGoals:
		return len(a.PrimaryGoals) > 0 && a.Timeframe != ""
	case SectionLifestyle:
		return a.NutritionQuality != ""
	case SectionMeasurements:
		return a.HeightCm > 0 && a.CurrentWeightKg > 0 && a.DesiredWeightKg > 0
	default:
		return false
	}
}

// MissingFields lists, in form order, the required fields of section
// that are not set. It is empty exactly when ValidateSection is true.
func MissingFields(a AnswerSet, section Section) []FieldID {
	var missing []FieldID
	add := func(unset bool, id FieldID) {
		if unset {
			missing = append(missing, id)
		}
	}

	switch section {
	case SectionPersonal:
		add(a.FullName == "", FieldFullName)
		add(a.BirthDate == "", FieldBirthDate)
		add(a.Email == "", FieldEmail)
		add(a.Phone == "", FieldPhone)
		add(a.Gender == "", FieldGender)
	case SectionActivity:
		add(a.ExperienceLevel == "", FieldExperienceLevel)
		add(a.TrainingLocation == "", FieldTrainingLocation)
	case SectionGoals:
		add(len(a.PrimaryGoals) == 0, FieldPrimaryGoals)
		add(a.Timeframe == "", FieldTimeframe)
	case SectionLifestyle:
		add(a.NutritionQuality == "", FieldNutritionQuality)
	case SectionMeasurements:
		add(!(a.HeightCm > 0), FieldHeight)
		add(!(a.CurrentWeightKg > 0), FieldCurrentWeight)
		add(!(a.DesiredWeightKg > 0), FieldDesiredWeight)
	}
	return missing
}
