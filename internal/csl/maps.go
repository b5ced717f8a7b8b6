// Package csl maps Zotero type and field names to their CSL equivalents and
// renders entries as a YAML reference block.
package csl

// typeMap converts Zotero item types to CSL types. Types not listed pass
// through unchanged.
var typeMap = map[string]string{
	"artwork":             "graphic",
	"audioRecording":      "song",
	"blogPost":            "post-weblog",
	"bookSection":         "chapter",
	"case":                "legal_case",
	"computerProgram":     "book",
	"conferencePaper":     "paper-conference",
	"dictionaryEntry":     "entry-dictionary",
	"document":            "report",
	"email":               "personal_communication",
	"encyclopediaArticle": "entry-encyclopedia",
	"film":                "motion_picture",
	"forumPost":           "post",
	"hearing":             "bill",
	"instantMessage":      "personal_communication",
	"interview":           "interview",
	"journalArticle":      "article-journal",
	"letter":              "personal_communication",
	"magazineArticle":     "article-magazine",
	"newspaperArticle":    "article-newspaper",
	"note":                "manuscript",
	"podcast":             "broadcast",
	"presentation":        "speech",
	"radioBroadcast":      "broadcast",
	"statute":             "legislation",
	"tvBroadcast":         "broadcast",
	"videoRecording":      "motion_picture",
}

// fieldMap converts Zotero field names to CSL field names. It is incomplete
// and best-effort; unmapped fields pass through unchanged.
var fieldMap = map[string]string{
	"abstractNote":        "abstract",
	"accessDate":          "accessed",
	"applicationNumber":   "call-number",
	"archiveLocation":     "archive_location",
	"artworkMedium":       "medium",
	"artworkSize":         "dimensions",
	"audioFileType":       "medium",
	"blogTitle":           "container-title",
	"bookTitle":           "container-title",
	"callNumber":          "call-number",
	"code":                "container-title",
	"codeNumber":          "volume",
	"codePages":           "page",
	"codeVolume":          "volume",
	"conferenceName":      "event",
	"court":               "authority",
	"date":                "issued",
	"dictionaryTitle":     "container-title",
	"distributor":         "publisher",
	"encyclopediaTitle":   "container-title",
	"extra":               "note",
	"filingDate":          "submitted",
	"forumTitle":          "container-title",
	"history":             "references",
	"institution":         "publisher",
	"interviewMedium":     "medium",
	"issuingAuthority":    "authority",
	"legalStatus":         "status",
	"legislativeBody":     "authority",
	"libraryCatalog":      "source",
	"meetingName":         "event",
	"numPages":            "number-of-pages",
	"numberOfVolumes":     "number-of-volumes",
	"pages":               "page",
	"place":               "publisher-place",
	"priorityNumbers":     "issue",
	"proceedingsTitle":    "container-title",
	"programTitle":        "container-title",
	"programmingLanguage": "genre",
	"publicationTitle":    "container-title",
	"reporter":            "container-title",
	"runningTime":         "dimensions",
	"series":              "collection-title",
	"seriesNumber":        "collection-number",
	"seriesTitle":         "collection-title",
	"session":             "chapter-number",
	"shortTitle":          "title-short",
	"system":              "medium",
	"thesisType":          "genre",
	"type":                "genre",
	"university":          "publisher",
	"url":                 "URL",
	"versionNumber":       "version",
	"websiteTitle":        "container-title",
	"websiteType":         "genre",
}

// MapType returns the CSL type for a Zotero item type.
func MapType(zoteroType string) string {
	if t, ok := typeMap[zoteroType]; ok {
		return t
	}
	return zoteroType
}

// MapField returns the CSL field name for a Zotero field name.
func MapField(zoteroField string) string {
	if f, ok := fieldMap[zoteroField]; ok {
		return f
	}
	return zoteroField
}
