package client

// ValidateForCreation checks name, email and phone. Every rule is evaluated
// so the caller can report all problems at once; ID is ignored.
func ValidateForCreation(c Client) Violations {
	var vs Violations
	for _, fr := range creationRules {
		value := fr.value(c)
		for _, r := range fr.rules {
			if !r.ok(value) {
				vs = append(vs, Violation{
					Field:   fr.field,
					Kind:    r.kind,
					Message: r.message,
				})
			}
		}
	}
	return vs
}

// ValidateForIdentification requires an assigned ID, regardless of the
// other fields.
func ValidateForIdentification(c Client) Violations {
	if c.ID == nil {
		return Violations{{
			Field:   FieldID,
			Kind:    KindMissingIdentifier,
			Message: "must be present",
		}}
	}
	return nil
}
