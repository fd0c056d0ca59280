package registry

// expandScopes resolves the (language, context) pairs a recognizer entry
// should be instantiated for, in priority order:
//
//  1. A bare-name entry, or one with no supported_languages field, fans
//     out over the registry-wide supported languages, each scope carrying
//     the entry's own context.
//  2. A plain code list yields one scope per code with no context; that
//     form cannot express per-language context.
//  3. A scoped list yields its elements as-is.
//
// Legacy entries with the singular supported_language field never reach
// this function; they bypass expansion entirely.
func expandScopes(e Entry, supportedLanguages []string) []Scope {
	switch {
	case e.Kind == EntryBareName || e.Languages.Kind == LanguagesAbsent:
		scopes := make([]Scope, 0, len(supportedLanguages))
		for _, lang := range supportedLanguages {
			scopes = append(scopes, Scope{Language: lang, Context: e.Context})
		}
		return scopes
	case e.Languages.Kind == LanguagesPlain:
		scopes := make([]Scope, 0, len(e.Languages.Plain))
		for _, lang := range e.Languages.Plain {
			scopes = append(scopes, Scope{Language: lang})
		}
		return scopes
	default:
		return e.Languages.Scoped
	}
}
