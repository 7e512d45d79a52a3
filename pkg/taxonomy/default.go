package taxonomy

import "portal/pkg/domain"

// Default returns a freshly allocated copy of the built-in taxonomy. Callers
// may modify the returned value without affecting other callers.
func Default() *Taxonomy {
	return &Taxonomy{
		Technologies: []string{
			"Machine Learning",
			"Deep Learning",
			"Artificial Intelligence",
			"Neural Network",
			"Natural Language Processing",
			"Computer Vision",
			"Image Processing",
			"Large Language Model",
			"Blockchain",
			"Internet of Things",
			"Cloud Computing",
			"Edge Computing",
			"Big Data",
			"Data Mining",
			"Python",
			"TensorFlow",
			"PyTorch",
			"MATLAB",
			"Arduino",
			"Raspberry Pi",
			"Docker",
			"Kubernetes",
			"Mobile Application",
			"Web Application",
			"Augmented Reality",
			"Virtual Reality",
			"Quantum Computing",
			"Robotics",
			"Drone",
			"Sensor Network",
			"Geographic Information System",
			"Database",
			"Simulation",
			"Software",
		},
		Domains: []string{
			"Healthcare",
			"Public Health",
			"Medicine",
			"Education",
			"Agriculture",
			"Finance",
			"Economics",
			"Environment",
			"Climate Change",
			"Renewable Energy",
			"Energy",
			"Transportation",
			"Smart Cities",
			"Manufacturing",
			"Cybersecurity",
			"Bioinformatics",
			"Biotechnology",
			"Data Science",
			"Software Engineering",
			"Computer Science",
			"Electrical Engineering",
			"Mechanical Engineering",
			"Civil Engineering",
			"Disaster Management",
			"Water Management",
			"Social Sciences",
			"Psychology",
		},
		Methodologies: []string{
			"Survey",
			"Questionnaire",
			"Interview",
			"Case Study",
			"Field Study",
			"Experiment",
			"Simulation",
			"Statistical Analysis",
			"Regression",
			"Qualitative Analysis",
			"Quantitative Analysis",
			"Mixed Methods",
			"Literature Review",
			"Systematic Review",
			"Meta-Analysis",
			"Comparative Study",
			"Prototype",
			"Cross-Validation",
			"Design Science",
			"Grounded Theory",
			"Agile",
		},
		Overrides: []Override{
			{Phrase: "software engineering", Term: "Software Engineering", Category: domain.CategoryDomain},
			{Phrase: "software development", Term: "Software Engineering", Category: domain.CategoryDomain},
			{Phrase: "data science", Term: "Data Science", Category: domain.CategoryDomain},
			{Phrase: "data mining", Term: "Data Mining", Category: domain.CategoryMethodology},
			{Phrase: "simulation model", Term: "Simulation", Category: domain.CategoryTechnology},
			{Phrase: "monte carlo", Term: "Simulation", Category: domain.CategoryMethodology},
			{Phrase: "internet-of-things", Term: "Internet of Things", Category: domain.CategoryTechnology},
			{Phrase: "language model", Term: "Large Language Model", Category: domain.CategoryTechnology},
			{Phrase: "cyber security", Term: "Cybersecurity", Category: domain.CategoryDomain},
			{Phrase: "user survey", Term: "Survey", Category: domain.CategoryMethodology},
			{Phrase: "prototyping", Term: "Prototype", Category: domain.CategoryMethodology},
		},
		FalsePositives: []string{
			"the", "and", "for", "with", "this", "that",
			"system", "systems", "research", "study", "paper", "project", "thesis",
			"analysis", "data", "method", "methods", "approach", "model", "results",
			"university", "college", "institute", "department", "campus", "faculty", "student", "students",
		},
		InstitutionMarkers: []string{
			"university", "institute of", "college of", "polytechnic", "academy", "school of", "department of",
		},
		Synonyms: map[string]string{
			"iot":                       "Internet of Things",
			"internet of things (iot)":  "Internet of Things",
			"nlp":                       "Natural Language Processing",
			"a.i.":                      "Artificial Intelligence",
			"machine-learning":          "Machine Learning",
			"neural networks":           "Neural Network",
			"artificial neural network": "Neural Network",
			"cnn":                       "Convolutional Neural Network",
			"llm":                       "Large Language Model",
			"llms":                      "Large Language Model",
			"gis":                       "Geographic Information System",
			"ict":                       "Information and Communication Technology",
			"k8s":                       "Kubernetes",
			"nodejs":                    "Node.js",
			"node.js":                   "Node.js",
			"e-learning":                "E-Learning",
			"cyber security":            "Cybersecurity",
		},
		TypeHints: map[domain.Category][]string{
			domain.CategoryTechnology: {
				"software", "programminglanguage", "programming_language", "device", "technology",
				"algorithm", "computer", "machine", "website",
			},
			domain.CategoryDomain: {
				"academicdiscipline", "academic_discipline", "discipline", "field", "science", "disease", "industry",
			},
			domain.CategoryMethodology: {
				"method", "technique", "process", "theory",
			},
		},
		Limits: Limits{
			Technologies:  8,
			Domains:       6,
			Methodologies: 5,
		},
		ConfidenceTiers: []ConfidenceTier{
			{MinMatches: 10, Score: 0.95},
			{MinMatches: 7, Score: 0.85},
			{MinMatches: 5, Score: 0.75},
			{MinMatches: 3, Score: 0.65},
		},
		FloorConfidence:       0.50,
		ProviderConfidenceCap: 0.95,
	}
}
