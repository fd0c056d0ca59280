package registry

// splitRecognizers partitions entries into predefined and custom lists,
// preserving declaration order within each. Bare names and entries with
// type "predefined" are predefined; structured entries with type absent
// or "custom" are custom. Entries with any other type are dropped without
// error: older configurations rely on this permissiveness, so it stays a
// documented gap rather than a validation failure.
func splitRecognizers(entries []Entry) (predefined, custom []Entry) {
	for _, e := range entries {
		switch {
		case e.Kind == EntryBareName || e.Type == "predefined":
			predefined = append(predefined, e)
		case e.Type == "" || e.Type == "custom":
			custom = append(custom, e)
		default:
			cfgLog.Debug().
				Str("recognizer", e.Name).
				Str("type", e.Type).
				Msg("dropping recognizer entry with unrecognized type")
		}
	}
	return predefined, custom
}
