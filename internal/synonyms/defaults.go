package synonyms

// DefaultTable returns the built-in synonym table covering the common
// technology spellings the engine should recognize without any external
// configuration. A file-based table layers on top of (or replaces) it.
func DefaultTable() Table {
	return Table{
		"language": {
			"Python":     {"python", "python3", "py"},
			"JavaScript": {"javascript", "js", "ecmascript"},
			"TypeScript": {"typescript", "ts"},
			"Go":         {"go", "golang"},
			"Java":       {"java"},
			"C#":         {"c#", "csharp"},
			"C++":        {"c++", "cpp"},
			"Ruby":       {"ruby"},
			"PHP":        {"php"},
			"Rust":       {"rust"},
		},
		"web_framework": {
			"React":   {"react", "reactjs", "react.js"},
			"Angular": {"angular", "angularjs", "angular.js"},
			"Vue":     {"vue", "vuejs", "vue.js"},
			"Django":  {"django"},
			"Flask":   {"flask"},
			"Rails":   {"rails", "ruby on rails"},
			"Express": {"express", "expressjs", "express.js"},
			"Spring":  {"spring", "spring boot"},
			"Node.js": {"node.js", "nodejs", "node"},
		},
		"database": {
			"SQL":           {"sql", "postgresql", "postgres", "mysql", "mariadb", "sqlite", "mssql", "sql server"},
			"PostgreSQL":    {"postgresql", "postgres"},
			"MySQL":         {"mysql", "mariadb"},
			"MongoDB":       {"mongodb", "mongo"},
			"Redis":         {"redis"},
			"Elasticsearch": {"elasticsearch", "elastic search", "es"},
		},
		"cloud_devops": {
			"AWS":        {"aws", "amazon web services"},
			"GCP":        {"gcp", "google cloud", "google cloud platform"},
			"Azure":      {"azure", "microsoft azure"},
			"Docker":     {"docker"},
			"Kubernetes": {"kubernetes", "k8s"},
			"Terraform":  {"terraform"},
			"CI/CD":      {"ci/cd", "cicd", "continuous integration"},
		},
	}
}
