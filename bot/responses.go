package bot

// Canned replies keyed by language then level. Read-only after init,
// safe for concurrent use.
var cannedResponses = map[Language]map[Level][]string{
	Spanish: {
		Beginner: {
			"¡Hola! ¿Cómo estás hoy?",
			"Me gusta mucho practicar contigo.",
			"¿Qué te gusta hacer en tu tiempo libre?",
			"El clima está muy bonito hoy, ¿verdad?",
			"¿Tienes alguna mascota?",
			"Me encanta aprender nuevas palabras contigo.",
			"¿Cuál es tu comida favorita?",
			"¿Has visto alguna película interesante últimamente?",
			"¿Te gusta viajar?",
			"¿Qué haces para relajarte?",
		},
		Intermediate: {
			"Es fascinante cómo cada idioma tiene su propia personalidad.",
			"¿Has notado cómo cambia tu forma de pensar cuando cambias de idioma?",
			"La práctica constante es clave para dominar cualquier idioma.",
			"¿Cuál crees que es el aspecto más desafiante de aprender idiomas?",
			"Me parece interesante cómo la cultura influye en el lenguaje.",
			"¿Has tenido alguna experiencia divertida comunicándote en otro idioma?",
			"La comunicación no verbal también es muy importante, ¿no crees?",
			"¿Qué estrategias usas para recordar vocabulario nuevo?",
			"Cada conversación es una oportunidad de aprender algo nuevo.",
			"¿Te gustaría que hablemos de algún tema específico?",
		},
		Advanced: {
			"La riqueza del lenguaje español radica en su diversidad cultural.",
			"¿Has explorado las diferencias entre el español de diferentes regiones?",
			"La literatura en español tiene una tradición extraordinaria.",
			"¿Qué opinas sobre la evolución del lenguaje en la era digital?",
			"La poesía en español tiene una musicalidad única.",
			"¿Has notado cómo el contexto social influye en el uso del lenguaje?",
			"La traducción es un arte que va más allá de las palabras.",
			"¿Cuál es tu perspectiva sobre el futuro de los idiomas?",
			"La comunicación efectiva requiere tanto técnica como empatía.",
			"¿Te interesa explorar algún aspecto específico de la lingüística?",
		},
	},
	English: {
		Beginner: {
			"Hello! How are you today?",
			"I really enjoy practicing with you.",
			"What do you like to do in your free time?",
			"The weather is very nice today, isn't it?",
			"Do you have any pets?",
			"I love learning new words with you.",
			"What's your favorite food?",
			"Have you seen any interesting movies lately?",
			"Do you like to travel?",
			"What do you do to relax?",
		},
		Intermediate: {
			"It's fascinating how each language has its own personality.",
			"Have you noticed how your thinking changes when you switch languages?",
			"Consistent practice is key to mastering any language.",
			"What do you think is the most challenging aspect of learning languages?",
			"I find it interesting how culture influences language.",
			"Have you had any funny experiences communicating in another language?",
			"Non-verbal communication is also very important, don't you think?",
			"What strategies do you use to remember new vocabulary?",
			"Every conversation is an opportunity to learn something new.",
			"Would you like to talk about any specific topic?",
		},
		Advanced: {
			"The richness of the English language lies in its global diversity.",
			"Have you explored the differences between English varieties worldwide?",
			"English literature has an extraordinary tradition.",
			"What's your perspective on language evolution in the digital age?",
			"English poetry has a unique musicality.",
			"Have you noticed how social context influences language use?",
			"Translation is an art that goes beyond words.",
			"What's your view on the future of languages?",
			"Effective communication requires both technique and empathy.",
			"Are you interested in exploring any specific aspect of linguistics?",
		},
	},
	French: {
		Beginner: {
			"Bonjour! Comment allez-vous aujourd'hui?",
			"J'aime beaucoup pratiquer avec vous.",
			"Que aimez-vous faire pendant votre temps libre?",
			"Le temps est très beau aujourd'hui, n'est-ce pas?",
			"Avez-vous des animaux de compagnie?",
			"J'adore apprendre de nouveaux mots avec vous.",
			"Quel est votre plat préféré?",
			"Avez-vous vu des films intéressants récemment?",
			"Aimez-vous voyager?",
			"Que faites-vous pour vous détendre?",
		},
		Intermediate: {
			"C'est fascinant comment chaque langue a sa propre personnalité.",
			"Avez-vous remarqué comment votre façon de penser change quand vous changez de langue?",
			"La pratique constante est la clé pour maîtriser n'importe quelle langue.",
			"Quel aspect de l'apprentissage des langues trouvez-vous le plus difficile?",
			"Je trouve intéressant comment la culture influence le langage.",
			"Avez-vous eu des expériences amusantes en communiquant dans une autre langue?",
			"La communication non verbale est aussi très importante, ne pensez-vous pas?",
			"Quelles stratégies utilisez-vous pour mémoriser le nouveau vocabulaire?",
			"Chaque conversation est une opportunité d'apprendre quelque chose de nouveau.",
			"Aimeriez-vous parler d'un sujet spécifique?",
		},
		Advanced: {
			"La richesse de la langue française réside dans sa diversité culturelle.",
			"Avez-vous exploré les différences entre le français de différentes régions?",
			"La littérature française a une tradition extraordinaire.",
			"Que pensez-vous de l'évolution du langage à l'ère numérique?",
			"La poésie française a une musicalité unique.",
			"Avez-vous remarqué comment le contexte social influence l'usage du langage?",
			"La traduction est un art qui va au-delà des mots.",
			"Quelle est votre perspective sur l'avenir des langues?",
			"La communication efficace nécessite à la fois technique et empathie.",
			"Êtes-vous intéressé par l'exploration d'un aspect spécifique de la linguistique?",
		},
	},
	Portuguese: {
		Beginner: {
			"Olá! Como você está hoje?",
			"Eu gosto muito de praticar com você.",
			"O que você gosta de fazer no seu tempo livre?",
			"O tempo está muito bonito hoje, não é?",
			"Você tem algum animal de estimação?",
			"Eu adoro aprender novas palavras com você.",
			"Qual é a sua comida favorita?",
			"Você assistiu algum filme interessante ultimamente?",
			"Você gosta de viajar?",
			"O que você faz para relaxar?",
		},
		Intermediate: {
			"É fascinante como cada idioma tem sua própria personalidade.",
			"Você já notou como sua forma de pensar muda quando você muda de idioma?",
			"A prática constante é a chave para dominar qualquer idioma.",
			"Qual aspecto do aprendizado de idiomas você acha mais desafiador?",
			"Eu acho interessante como a cultura influencia a linguagem.",
			"Você já teve alguma experiência engraçada se comunicando em outro idioma?",
			"A comunicação não verbal também é muito importante, você não acha?",
			"Que estratégias você usa para lembrar novo vocabulário?",
			"Cada conversa é uma oportunidade de aprender algo novo.",
			"Você gostaria de falar sobre algum tópico específico?",
		},
		Advanced: {
			"A riqueza da língua portuguesa reside em sua diversidade cultural.",
			"Você já explorou as diferenças entre o português de diferentes regiões?",
			"A literatura portuguesa tem uma tradição extraordinária.",
			"O que você pensa sobre a evolução da linguagem na era digital?",
			"A poesia portuguesa tem uma musicalidade única.",
			"Você já notou como o contexto social influencia o uso da linguagem?",
			"A tradução é uma arte que vai além das palavras.",
			"Qual é sua perspectiva sobre o futuro dos idiomas?",
			"A comunicação eficaz requer tanto técnica quanto empatia.",
			"Você está interessado em explorar algum aspecto específico da linguística?",
		},
	},
	German: {
		Beginner: {
			"Hallo! Wie geht es dir heute?",
			"Ich übe gerne mit dir.",
			"Was machst du gerne in deiner Freizeit?",
			"Das Wetter ist heute sehr schön, nicht wahr?",
			"Hast du Haustiere?",
			"Ich lerne gerne neue Wörter mit dir.",
			"Was ist dein Lieblingsessen?",
			"Hast du kürzlich interessante Filme gesehen?",
			"Reist du gerne?",
			"Was machst du zum Entspannen?",
		},
		Intermediate: {
			"Es ist faszinierend, wie jede Sprache ihre eigene Persönlichkeit hat.",
			"Hast du bemerkt, wie sich dein Denken ändert, wenn du die Sprache wechselst?",
			"Kontinuierliche Übung ist der Schlüssel zum Beherrschen jeder Sprache.",
			"Welchen Aspekt des Sprachenlernens findest du am herausforderndsten?",
			"Ich finde es interessant, wie die Kultur die Sprache beeinflusst.",
			"Hattest du schon lustige Erfahrungen beim Kommunizieren in einer anderen Sprache?",
			"Nonverbale Kommunikation ist auch sehr wichtig, findest du nicht?",
			"Welche Strategien verwendest du, um neues Vokabular zu behalten?",
			"Jedes Gespräch ist eine Gelegenheit, etwas Neues zu lernen.",
			"Möchtest du über ein bestimmtes Thema sprechen?",
		},
		Advanced: {
			"Der Reichtum der deutschen Sprache liegt in ihrer kulturellen Vielfalt.",
			"Hast du die Unterschiede zwischen dem Deutschen verschiedener Regionen erkundet?",
			"Die deutsche Literatur hat eine außergewöhnliche Tradition.",
			"Was denkst du über die Sprachentwicklung im digitalen Zeitalter?",
			"Die deutsche Poesie hat eine einzigartige Musikalität.",
			"Hast du bemerkt, wie der soziale Kontext den Sprachgebrauch beeinflusst?",
			"Übersetzung ist eine Kunst, die über Worte hinausgeht.",
			"Wie ist deine Perspektive auf die Zukunft der Sprachen?",
			"Effektive Kommunikation erfordert sowohl Technik als auch Empathie.",
			"Interessierst du dich für die Erforschung eines bestimmten Aspekts der Linguistik?",
		},
	},
	Italian: {
		Beginner: {
			"Ciao! Come stai oggi?",
			"Mi piace molto praticare con te.",
			"Cosa ti piace fare nel tuo tempo libero?",
			"Il tempo è molto bello oggi, non è vero?",
			"Hai animali domestici?",
			"Adoro imparare nuove parole con te.",
			"Qual è il tuo cibo preferito?",
			"Hai visto film interessanti ultimamente?",
			"Ti piace viaggiare?",
			"Cosa fai per rilassarti?",
		},
		Intermediate: {
			"È affascinante come ogni lingua abbia la sua personalità.",
			"Hai notato come cambia il tuo modo di pensare quando cambi lingua?",
			"La pratica costante è la chiave per padroneggiare qualsiasi lingua.",
			"Quale aspetto dell'apprendimento delle lingue trovi più impegnativo?",
			"Trovo interessante come la cultura influenzi il linguaggio.",
			"Hai mai avuto esperienze divertenti comunicando in un'altra lingua?",
			"La comunicazione non verbale è anche molto importante, non credi?",
			"Che strategie usi per ricordare nuovo vocabolario?",
			"Ogni conversazione è un'opportunità per imparare qualcosa di nuovo.",
			"Ti piacerebbe parlare di un argomento specifico?",
		},
		Advanced: {
			"La ricchezza della lingua italiana risiede nella sua diversità culturale.",
			"Hai esplorato le differenze tra l'italiano di diverse regioni?",
			"La letteratura italiana ha una tradizione straordinaria.",
			"Cosa pensi dell'evoluzione del linguaggio nell'era digitale?",
			"La poesia italiana ha una musicalità unica.",
			"Hai notato come il contesto sociale influenza l'uso del linguaggio?",
			"La traduzione è un'arte che va oltre le parole.",
			"Qual è la tua prospettiva sul futuro delle lingue?",
			"La comunicazione efficace richiede sia tecnica che empatia.",
			"Sei interessato ad esplorare qualche aspetto specifico della linguistica?",
		},
	},
}

// Topic-scoped conversation starters: topic → language → level.
var topicResponses = map[string]map[Language]map[Level][]string{
	"viajes": {
		Spanish: {
			Beginner: {
				"¿A dónde te gustaría viajar?",
				"¿Cuál es tu destino favorito?",
				"¿Prefieres la playa o la montaña?",
				"¿Has viajado en avión alguna vez?",
			},
			Intermediate: {
				"¿Qué aspectos consideras al planificar un viaje?",
				"¿Has tenido alguna experiencia cultural interesante viajando?",
				"¿Cómo prefieres conocer un nuevo lugar?",
			},
			Advanced: {
				"¿Cómo crees que el turismo afecta a las culturas locales?",
				"¿Qué opinas sobre el turismo sostenible?",
			},
		},
		English: {
			Beginner: {
				"Where would you like to travel?",
				"What's your favorite destination?",
				"Do you prefer beach or mountains?",
				"Have you ever traveled by plane?",
			},
			Intermediate: {
				"What aspects do you consider when planning a trip?",
				"Have you had any interesting cultural experiences while traveling?",
				"How do you prefer to explore a new place?",
			},
			Advanced: {
				"How do you think tourism affects local cultures?",
				"What's your opinion on sustainable tourism?",
			},
		},
	},
	"trabajo": {
		Spanish: {
			Beginner: {
				"¿En qué trabajas?",
				"¿Te gusta tu trabajo?",
				"¿Qué haces en tu trabajo?",
				"¿Trabajas en una oficina?",
			},
			Intermediate: {
				"¿Cuáles son los desafíos más grandes en tu profesión?",
				"¿Cómo mantienes un equilibrio entre trabajo y vida personal?",
				"¿Qué habilidades consideras más importantes en el trabajo?",
			},
			Advanced: {
				"¿Cómo crees que la tecnología está cambiando tu industria?",
				"¿Qué opinas sobre el trabajo remoto y sus implicaciones?",
			},
		},
	},
}

// Per-intent reply tables. Languages without an entry fall through to the
// default canned response.
var gratitudeResponses = map[Language]map[Level][]string{
	Spanish: {
		Beginner:     {"¡De nada! Me gusta ayudarte.", "¡Es un placer!", "¡No hay problema!"},
		Intermediate: {"Es un placer practicar contigo.", "Me alegra poder ayudarte.", "¡De nada! Siempre es un gusto."},
		Advanced:     {"El placer es mío, siempre es enriquecedor conversar contigo.", "Me complace poder contribuir a tu aprendizaje."},
	},
}

var farewellResponses = map[Language]map[Level][]string{
	Spanish: {
		Beginner:     {"¡Hasta luego! Fue genial practicar contigo.", "¡Nos vemos pronto!", "¡Que tengas un buen día!"},
		Intermediate: {"Ha sido un placer conversar contigo. ¡Hasta la próxima!", "¡Que tengas un excelente día!"},
		Advanced:     {"Ha sido una conversación muy enriquecedora. ¡Hasta pronto!"},
	},
}
