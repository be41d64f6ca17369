package i18n

var messagesEN = map[string]string{
	"app.title":    "Voces Visuales",
	"app.subtitle": "Poster creation and evaluation platform",

	"nav.landing": "Home",
	"nav.editor":  "Create poster",
	"nav.rubric":  "Rubric",
	"nav.jury":    "Jury",
	"nav.present": "Presentation",

	"landing.welcome":      "Welcome",
	"landing.intro":        "Turns the \"Voces visuales contra el cáncer\" contest rubric into interactive flows.",
	"landing.state":        "Current poster state",
	"landing.title":        "Title:",
	"landing.untitled":     "(untitled)",
	"landing.introduction": "Introduction:",
	"landing.empty":        "(empty)",
	"landing.score":        "Score (estimated): %d / %d",
	"landing.started":      "Session started at %s",

	"editor.heading":           "Poster editor",
	"editor.title":             "Title (max %d words)",
	"editor.title_placeholder": "Write the poster title",
	"editor.words":             "Words: %d",
	"editor.introduction":      "Introduction",
	"editor.introduction_hint": "Tip: include background, relevance and objective.",
	"editor.methodology":       "Methodology (search terms and databases)",
	"editor.results":           "Results, discussion and conclusion",
	"editor.references":        "References (APA or Vancouver)",
	"editor.design":            "Quick design",
	"editor.background":        "Background: %s",
	"editor.font":              "Font: %s",
	"editor.preview":           "Preview",
	"editor.preview_title":     "Poster title",
	"editor.preview_intro":     "Short introduction",

	"background.light": "Light",
	"background.dark":  "Dark",
	"font.sans":        "Sans",
	"font.serif":       "Serif",
	"font.mono":        "Mono",

	"rubric.heading":     "Rubric and checklist",
	"rubric.hint":        "Adjust the scores to see the total. (0-3 per criterion)",
	"rubric.points":      "%d points",
	"rubric.subtotal":    "Subtotal: %d / %d",
	"rubric.total":       "Total score: %d / %d",
	"rubric.report_done": "Report (mock) generated",
	"rubric.reset_done":  "Rubric reset",
	"rubric.changed":     "(exported: %d)",

	"jury.heading":              "Jury panel",
	"jury.hint":                 "Each juror can submit a rating.",
	"jury.form":                 "Juror 1 · Quick form",
	"jury.comments":             "Public comments",
	"jury.comments_placeholder": "Jury comments and recommendations",
	"jury.sent":                 "Comments sent (%d characters)",
	"jury.draft_saved":          "Draft saved",
	"jury.empty":                "Write a comment before sending",

	"present.heading":        "Presentation simulator",
	"present.hint":           "Record a rehearsal (mock). Voice analysis is not included.",
	"present.recorder":       "Recorder",
	"present.recording":      "Recording %s",
	"present.paused":         "Stopped at %s",
	"present.idle":           "Ready to record",
	"present.started":        "Starting recording (mock)",
	"present.stopped":        "Stopping recording (mock)",
	"present.pace":           "Estimated pace: %d wpm",
	"present.feedback":       "Feedback",
	"present.feedback.1":     "Command of the topic: Excellent",
	"present.feedback.2":     "Volume and tone: Adequate",
	"present.feedback.3":     "Clarity and diction: Needs small improvements",
	"present.feedback.4":     "Pace and pauses: Good control",
	"present.recommendation": "Recommendation (mock) generated",

	"status.exported":      "Exported: %s",
	"status.export_failed": "Export failed: %v",
	"status.no_exporter":   "Export unavailable",
	"status.goto":          "Go to view: ",
	"status.error":         "Error: %v",
	"status.theme":         "Theme: %s",
	"status.locale":        "Language: %s",
	"status.reset_all":     "Poster and rubric reset; %d session exports discarded",

	"help.views":     "Views",
	"help.cycle":     "Next/prev view",
	"help.goto":      "Go to",
	"help.export":    "Export",
	"help.theme":     "Theme",
	"help.locale":    "Language",
	"help.quit":      "Quit",
	"help.editor":    "Editor",
	"help.rubric":    "Rubric",
	"help.move":      "Move",
	"help.edit":      "Edit",
	"help.leave":     "Leave field",
	"help.bg":        "Background",
	"help.font":      "Font",
	"help.adjust":    "Adjust",
	"help.set":       "Score",
	"help.reset":     "Reset",
	"help.report":    "Report",
	"help.cycle_val": "Cycle",
	"help.comments":  "Comment",
	"help.send":      "Send",
	"help.draft":     "Draft",
	"help.record":    "Record/Stop",
	"help.pace":      "Pace",
	"help.recommend": "Recommendation",
	"help.reset_all": "New poster",
}
