package discovery

// Question is one weighted questionnaire entry. Higher weights count more
// in both the LLM prompt and the rule-based fallback scoring.
type Question struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Category    string   `json:"category"`
	Weight      int      `json:"weight"`
	Options     []string `json:"options"`
	MultiSelect bool     `json:"multiSelect,omitempty"`
}

// Questions returns the role-discovery questionnaire.
func Questions() []Question {
	return []Question{
		{
			ID:       1,
			Question: "What area of technology interests you the most?",
			Category: "interest",
			Weight:   3,
			Options: []string{
				"Building websites and web applications",
				"Creating mobile apps",
				"Working with data and analytics",
				"Designing user interfaces and experiences",
				"Managing databases and backend systems",
				"Artificial Intelligence and Machine Learning",
				"Cloud infrastructure and DevOps",
				"Cybersecurity and Network Security",
				"Game Development",
				"IoT and Embedded Systems",
			},
		},
		{
			ID:       2,
			Question: "Which programming languages or technologies are you familiar with? (Select all)",
			Category: "technical_skills",
			Weight:   3,
			Options: []string{
				"HTML, CSS, JavaScript",
				"Python",
				"Java / Kotlin",
				"React, Vue, or Angular",
				"SQL and databases",
				"Node.js / Express",
				"TypeScript",
				"C# / .NET",
				"Swift / Objective-C",
				"Docker / Kubernetes",
				"AWS / Azure / GCP",
				"TensorFlow / PyTorch",
				"None yet, I'm just starting",
			},
			MultiSelect: true,
		},
		{
			ID:       3,
			Question: "What type of work excites you the most?",
			Category: "work_style",
			Weight:   2,
			Options: []string{
				"Creating visual designs and user experiences",
				"Writing code and building applications",
				"Analyzing data and finding insights",
				"Solving complex technical problems",
				"Managing projects and teams",
				"Testing and ensuring quality",
				"Automating processes and infrastructure",
				"Research and experimentation",
				"Teaching and mentoring others",
			},
		},
		{
			ID:       4,
			Question: "What is your current skill level in technology?",
			Category: "experience_level",
			Weight:   2,
			Options: []string{
				"Complete beginner - just exploring",
				"Beginner - know basic concepts",
				"Intermediate - can build simple projects",
				"Advanced - have 1-2 years experience",
				"Expert - have 3+ years professional experience",
			},
		},
		{
			ID:       5,
			Question: "Which aspect of software do you prefer working on?",
			Category: "technical_focus",
			Weight:   3,
			Options: []string{
				"What users see (Frontend - UI/UX)",
				"Behind the scenes logic (Backend - APIs, databases)",
				"Both frontend and backend (Full-Stack)",
				"Data pipelines and analytics",
				"Machine Learning models and AI",
				"Infrastructure and cloud systems",
				"Mobile applications",
				"Desktop applications",
				"Not sure yet",
			},
		},
		{
			ID:       6,
			Question: "Which industry or domain interests you?",
			Category: "industry",
			Weight:   1,
			Options: []string{
				"Technology/Software companies",
				"Finance and Banking",
				"Healthcare and Biotech",
				"E-commerce and Retail",
				"Gaming and Entertainment",
				"Education and EdTech",
				"Social Media and Communication",
				"Startups and Innovation",
				"Government and Public Sector",
				"Any industry - I'm flexible",
			},
		},
		{
			ID:       7,
			Question: "What are your career goals for the next 2-3 years?",
			Category: "career_goals",
			Weight:   2,
			Options: []string{
				"Get my first tech job quickly",
				"Build strong technical skills and expertise",
				"Become a specialist in one area (deep knowledge)",
				"Have diverse skills across technologies (broad knowledge)",
				"Move into leadership or management",
				"Start my own tech business or freelance",
				"Work remotely for international companies",
				"Transition from another field into tech",
			},
		},
		{
			ID:       8,
			Question: "How do you prefer to learn new technologies?",
			Category: "learning_style",
			Weight:   1,
			Options: []string{
				"Hands-on projects and building things",
				"Structured courses and tutorials",
				"Reading documentation and articles",
				"Video lessons and online bootcamps",
				"Working with a mentor or coach",
				"Contributing to open source projects",
				"Mix of everything",
			},
		},
		{
			ID:       9,
			Question: "Which type of problems do you enjoy solving?",
			Category: "problem_solving",
			Weight:   2,
			Options: []string{
				"Visual and design challenges",
				"Logic and algorithmic puzzles",
				"Data patterns and statistical analysis",
				"System architecture and scalability",
				"User experience and usability",
				"Performance optimization",
				"Security vulnerabilities",
				"Process automation",
				"Business and strategic problems",
			},
		},
		{
			ID:       10,
			Question: "What is your math and statistics comfort level?",
			Category: "math_skills",
			Weight:   2,
			Options: []string{
				"Not comfortable - prefer to avoid heavy math",
				"Basic level - simple calculations are fine",
				"Moderate level - comfortable with algebra and basic stats",
				"Strong level - enjoy probability, statistics, and calculus",
				"Expert level - love advanced mathematics and algorithms",
			},
		},
		{
			ID:       11,
			Question: "Which work environment appeals to you?",
			Category: "work_environment",
			Weight:   1,
			Options: []string{
				"Fast-paced startup with rapid changes",
				"Established company with clear processes",
				"Remote/distributed team",
				"Collaborative office environment",
				"Research and innovation lab",
				"Freelance/Contract work",
				"Any environment is fine",
			},
		},
		{
			ID:       12,
			Question: "What motivates you the most in your career?",
			Category: "motivation",
			Weight:   1,
			Options: []string{
				"High salary and financial growth",
				"Learning and skill development",
				"Creating impact and helping users",
				"Innovation and cutting-edge technology",
				"Work-life balance and flexibility",
				"Job security and stability",
				"Recognition and career advancement",
				"Solving challenging problems",
			},
		},
	}
}
