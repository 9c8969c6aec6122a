package roles

// fingerprint is the keyword set that identifies a role.
type fingerprint struct {
	role     string
	keywords []string
}

// fingerprints lists every role in declared order; ties keep this order.
//
//nolint:gochecknoglobals // read-only table
var fingerprints = []fingerprint{
	{"ML/AI Engineer", []string{
		"tensorflow", "pytorch", "scikit-learn", "keras", "pandas", "numpy", "machine learning", "deep learning",
		"nlp", "hugging face", "llm", "langchain", "spacy", "mlflow", "airflow", "computer vision",
	}},
	{"Data Scientist", []string{
		"pandas", "numpy", "matplotlib", "seaborn", "plotly", "r", "jupyter", "statistics",
		"data analysis", "data visualization", "scikit-learn", "hypothesis testing", "tableau", "power bi",
	}},
	{"Data Engineer", []string{
		"spark", "kafka", "airflow", "dbt", "etl", "data pipeline", "snowflake", "redshift",
		"bigquery", "data warehouse", "hadoop", "hive", "flink",
	}},
	{"Backend Engineer", []string{
		"node.js", "express.js", "python", "java", "spring boot", "django", "flask", "fastapi",
		"rest api", "postgresql", "mysql", "mongodb", "redis", "graphql", "microservices",
	}},
	{"Frontend Engineer", []string{
		"react", "next.js", "vue.js", "angular", "typescript", "javascript", "html", "css",
		"tailwind css", "sass", "webpack", "vite", "responsive design", "figma",
	}},
	{"Full Stack Engineer", []string{
		"react", "node.js", "postgresql", "mongodb", "typescript", "rest api", "docker", "aws", "express.js",
	}},
	{"DevOps / SRE", []string{
		"docker", "kubernetes", "terraform", "ansible", "helm", "ci/cd", "jenkins", "github actions",
		"aws", "gcp", "azure", "linux", "nginx", "prometheus", "grafana", "argocd",
	}},
	{"Cloud Architect", []string{
		"aws", "gcp", "azure", "cloudformation", "terraform", "eks", "ecs", "lambda",
		"s3", "iam", "vpc", "cloud architecture",
	}},
	{"Mobile Developer (iOS/Android)", []string{
		"swift", "kotlin", "ios", "android", "react native", "flutter", "xcode", "android studio", "expo",
	}},
	{"Security Engineer", []string{
		"penetration testing", "owasp", "iam", "zero trust", "soc 2", "cryptography",
		"vulnerability assessment", "security",
	}},
	{"QA / Test Engineer", []string{
		"jest", "cypress", "playwright", "selenium", "pytest", "junit", "tdd", "bdd", "postman",
	}},
	{"Blockchain / Web3", []string{
		"solidity", "ethereum", "web3", "smart contracts", "blockchain", "hardhat", "truffle", "defi",
	}},
	{"Product Manager", []string{
		"agile", "scrum", "kanban", "jira", "roadmap", "product strategy", "user research", "okrs",
		"stakeholder management",
	}},
	{"Engineering Manager", []string{
		"team leadership", "mentoring", "agile", "scrum", "hiring", "performance review", "roadmap",
		"stakeholder management",
	}},
	{"System Design / Architect", []string{
		"system design", "microservices", "distributed systems", "caching", "load balancing", "kafka",
		"event driven", "api gateway",
	}},
	{"Data Analyst", []string{
		"sql", "excel", "tableau", "power bi", "data visualization", "pandas", "google analytics", "looker",
	}},
	{"Research Scientist", []string{
		"reinforcement learning", "computer vision", "nlp", "pytorch", "tensorflow", "research",
		"publications", "phd", "mathematics",
	}},
	{"Site Reliability Engineer", []string{
		"kubernetes", "prometheus", "grafana", "terraform", "on-call", "incident management",
		"reliability", "observability",
	}},
	{"Technical Writer", []string{
		"technical writing", "documentation", "markdown", "confluence", "api documentation", "swagger",
	}},
	{"Software Engineer (General)", []string{
		"python", "java", "c++", "algorithms", "data structures", "oop", "git", "code review",
	}},
}
