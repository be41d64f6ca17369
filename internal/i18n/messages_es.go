package i18n

var messagesES = map[string]string{
	"app.title":    "Voces Visuales",
	"app.subtitle": "Plataforma de creación y evaluación de carteles",

	"nav.landing": "Inicio",
	"nav.editor":  "Crear cartel",
	"nav.rubric":  "Rúbrica",
	"nav.jury":    "Jurado",
	"nav.present": "Exposición",

	"landing.welcome":      "Bienvenido",
	"landing.intro":        "Convierte la rúbrica del concurso \"Voces visuales contra el cáncer\" en flujos interactivos.",
	"landing.state":        "Estado actual del cartel",
	"landing.title":        "Título:",
	"landing.untitled":     "(sin título)",
	"landing.introduction": "Introducción:",
	"landing.empty":        "(vacía)",
	"landing.score":        "Puntuación (estimada): %d / %d",
	"landing.started":      "Sesión iniciada a las %s",

	"editor.heading":           "Editor del cartel",
	"editor.title":             "Título (máx %d palabras)",
	"editor.title_placeholder": "Escribe el título del cartel",
	"editor.words":             "Palabras: %d",
	"editor.introduction":      "Introducción",
	"editor.introduction_hint": "Consejo: incluye antecedentes, relevancia y objetivo.",
	"editor.methodology":       "Metodología (términos de búsqueda y bases de datos)",
	"editor.results":           "Resultados, discusión y conclusión",
	"editor.references":        "Referencias (APA o Vancouver)",
	"editor.design":            "Diseño rápido",
	"editor.background":        "Fondo: %s",
	"editor.font":              "Fuente: %s",
	"editor.preview":           "Previsualización",
	"editor.preview_title":     "Título del cartel",
	"editor.preview_intro":     "Introducción breve",

	"background.light": "Claro",
	"background.dark":  "Oscuro",
	"font.sans":        "Sans",
	"font.serif":       "Serif",
	"font.mono":        "Mono",

	"rubric.heading":     "Rúbrica y checklist",
	"rubric.hint":        "Ajusta las puntuaciones para ver el total. (0-3 por criterio)",
	"rubric.points":      "%d puntos",
	"rubric.subtotal":    "Subtotal: %d / %d",
	"rubric.total":       "Puntuación total: %d / %d",
	"rubric.report_done": "Reporte (mock) generado",
	"rubric.reset_done":  "Rúbrica restablecida",
	"rubric.changed":     "(exportado: %d)",

	"jury.heading":              "Panel del jurado",
	"jury.hint":                 "Cada jurado puede subir su calificación.",
	"jury.form":                 "Jurado 1 · Formulario rápido",
	"jury.comments":             "Comentarios públicos",
	"jury.comments_placeholder": "Comentarios y recomendaciones del jurado",
	"jury.sent":                 "Comentarios enviados (%d caracteres)",
	"jury.draft_saved":          "Borrador guardado",
	"jury.empty":                "Escribe un comentario antes de enviar",

	"present.heading":        "Simulador de exposición",
	"present.hint":           "Graba un ensayo (mock). El análisis de voz no está incluido.",
	"present.recorder":       "Grabador",
	"present.recording":      "Grabando %s",
	"present.paused":         "Detenido en %s",
	"present.idle":           "Listo para grabar",
	"present.started":        "Iniciando grabación (mock)",
	"present.stopped":        "Deteniendo grabación (mock)",
	"present.pace":           "Velocidad estimada: %d ppm",
	"present.feedback":       "Retroalimentación",
	"present.feedback.1":     "Dominio del tema: Excelente",
	"present.feedback.2":     "Volumen y tono: Adecuado",
	"present.feedback.3":     "Claridad y dicción: Requiere pequeñas mejoras",
	"present.feedback.4":     "Ritmo y pausas: Buen control",
	"present.recommendation": "Recomendación (mock) generada",

	"status.exported":      "Exportado: %s",
	"status.export_failed": "Error al exportar: %v",
	"status.no_exporter":   "Exportación no disponible",
	"status.goto":          "Ir a vista: ",
	"status.error":         "Error: %v",
	"status.theme":         "Tema: %s",
	"status.locale":        "Idioma: %s",
	"status.reset_all":     "Cartel y rúbrica reiniciados; %d exportaciones de la sesión descartadas",

	"help.views":     "Vistas",
	"help.cycle":     "Vista sig./ant.",
	"help.goto":      "Ir a",
	"help.export":    "Exportar",
	"help.theme":     "Tema",
	"help.locale":    "Idioma",
	"help.quit":      "Salir",
	"help.editor":    "Editor",
	"help.rubric":    "Rúbrica",
	"help.move":      "Mover",
	"help.edit":      "Editar",
	"help.leave":     "Salir del campo",
	"help.bg":        "Fondo",
	"help.font":      "Fuente",
	"help.adjust":    "Ajustar",
	"help.set":       "Puntuar",
	"help.reset":     "Reiniciar",
	"help.report":    "Reporte",
	"help.cycle_val": "Cambiar",
	"help.comments":  "Comentar",
	"help.send":      "Enviar",
	"help.draft":     "Borrador",
	"help.record":    "Grabar/Detener",
	"help.pace":      "Velocidad",
	"help.recommend": "Recomendación",
	"help.reset_all": "Nuevo cartel",
}
