package catalog

// skillTypeNames maps a skill type id to its display name.
var skillTypeNames = map[string]string{
	"programming":        "Programming Languages",
	"framework":          "Frameworks & Libraries",
	"database":           "Databases",
	"cloud_infra":        "Cloud & Infrastructure",
	"devops_tool":        "DevOps & SRE Tools",
	"version_control":    "Version Control",
	"productivity":       "Productivity & Collaboration",
	"design_tool":        "Design Tools",
	"testing":            "Testing",
	"data_ml":            "Data, ML & AI",
	"api":                "APIs",
	"security":           "Security",
	"mobile":             "Mobile",
	"methodology":        "Methodologies",
	"hardware":           "Hardware",
	"eda_tool":           "EDA Tools",
	"soft_skill":         "Soft Skills",
	"observability":      "Observability & Monitoring",
	"message_queue":      "Messaging & Streaming",
	"search_engine":      "Search & Indexing",
	"build_tool":         "Build Tools",
	"package_manager":    "Package Managers",
	"runtime":            "Runtimes & Platforms",
	"auth_identity":      "Authentication & Identity",
	"api_gateway":        "API Gateway & Service Mesh",
	"infra_platform":     "Platform Engineering",
	"data_engineering":   "Data Engineering",
	"ml_ops":             "MLOps & Model Ops",
	"analytics_tracking": "Analytics & Product Tracking",
	"game_dev":           "Game Development",
	"ar_vr":              "AR / VR",
	"blockchain":         "Blockchain & Web3",
	"embedded":           "Embedded Systems",
	"desktop_dev":        "Desktop Development",
	"cms":                "CMS & Web Platforms",
	"ecommerce":          "E-commerce Platforms",
	"llm_engineering":    "LLM & Generative AI Engineering",
}

var defaultSkills = []Skill{
	// programming
	{Name: "Python", Type: "programming", Patterns: []string{"python"}},
	{Name: "JavaScript", Type: "programming", Patterns: []string{"javascript", "js"}},
	{Name: "TypeScript", Type: "programming", Patterns: []string{"typescript"}},
	{Name: "Java", Type: "programming", Patterns: []string{"java"}},
	{Name: "Kotlin", Type: "programming", Patterns: []string{"kotlin"}},
	{Name: "Swift", Type: "programming", Patterns: []string{"swift"}},
	{Name: "Go", Type: "programming", Patterns: []string{"golang"}},
	{Name: "Rust", Type: "programming", Patterns: []string{"rust"}},
	{Name: "C++", Type: "programming", Patterns: []string{"c++", "cpp", "c plus plus"}},
	{Name: "C Sharp", Type: "programming", Patterns: []string{"c#", "csharp"}},
	{Name: "Ruby", Type: "programming", Patterns: []string{"ruby"}},
	{Name: "PHP", Type: "programming", Patterns: []string{"php"}},
	{Name: "Scala", Type: "programming", Patterns: []string{"scala"}},
	{Name: "SQL", Type: "programming", Patterns: []string{"sql"}},
	{Name: "Shell scripting", Type: "programming", Patterns: []string{"shell", "bash", "zsh"}},
	{Name: "Objective-C", Type: "programming", Patterns: []string{"objective-c", "objc"}},
	{Name: "OCaml", Type: "programming", Patterns: []string{"ocaml"}},
	{Name: "R", Type: "programming", Patterns: []string{"r language"}},
	{Name: "MATLAB", Type: "programming", Patterns: []string{"matlab"}},
	{Name: "Haskell", Type: "programming", Patterns: []string{"haskell"}},
	{Name: "Elixir", Type: "programming", Patterns: []string{"elixir"}},
	{Name: "Dart", Type: "programming", Patterns: []string{"dart"}},

	// framework
	{Name: "React", Type: "framework", Patterns: []string{"react", "reactjs"}},
	{Name: "Vue", Type: "framework", Patterns: []string{"vue", "vuejs", "vue.js"}},
	{Name: "Angular", Type: "framework", Patterns: []string{"angular"}},
	{Name: "Next.js", Type: "framework", Patterns: []string{"next.js", "nextjs"}},
	{Name: "Nuxt", Type: "framework", Patterns: []string{"nuxt"}},
	{Name: "Svelte", Type: "framework", Patterns: []string{"svelte"}},
	{Name: "Redux", Type: "framework", Patterns: []string{"redux"}},
	{Name: "jQuery", Type: "framework", Patterns: []string{"jquery"}},
	{Name: "Tailwind CSS", Type: "framework", Patterns: []string{"tailwind", "tailwindcss"}},
	{Name: "CSS", Type: "framework", Patterns: []string{"css", "css3"}},
	{Name: "HTML", Type: "framework", Patterns: []string{"html", "html5"}},
	{Name: "Webpack", Type: "framework", Patterns: []string{"webpack"}},
	{Name: "Vite", Type: "framework", Patterns: []string{"vite"}},
	{Name: "NestJS", Type: "framework", Patterns: []string{"nestjs", "nest.js"}},
	{Name: "Remix", Type: "framework", Patterns: []string{"remix"}},
	{Name: "Astro", Type: "framework", Patterns: []string{"astro"}},
	{Name: "Spring WebFlux", Type: "framework", Patterns: []string{"webflux"}},
	{Name: "Micronaut", Type: "framework", Patterns: []string{"micronaut"}},
	{Name: "Quarkus", Type: "framework", Patterns: []string{"quarkus"}},
	{Name: "Node.js", Type: "framework", Patterns: []string{"node.js", "nodejs"}},
	{Name: "Express", Type: "framework", Patterns: []string{"express.js"}},
	{Name: "Django", Type: "framework", Patterns: []string{"django"}},
	{Name: "Flask", Type: "framework", Patterns: []string{"flask"}},
	{Name: "FastAPI", Type: "framework", Patterns: []string{"fastapi", "fast api"}},
	{Name: "Spring", Type: "framework", Patterns: []string{"spring", "spring boot", "springboot"}},
	{Name: "Rails", Type: "framework", Patterns: []string{"rails", "ruby on rails"}},
	{Name: "Laravel", Type: "framework", Patterns: []string{"laravel"}},

	// api
	{Name: "GraphQL", Type: "api", Patterns: []string{"graphql"}},
	{Name: "REST", Type: "api", Patterns: []string{"rest", "rest api", "restful"}},
	{Name: "gRPC", Type: "api", Patterns: []string{"grpc"}},

	// database
	{Name: "PostgreSQL", Type: "database", Patterns: []string{"postgresql", "postgres"}},
	{Name: "MySQL", Type: "database", Patterns: []string{"mysql"}},
	{Name: "MongoDB", Type: "database", Patterns: []string{"mongodb", "mongo"}},
	{Name: "Redis", Type: "database", Patterns: []string{"redis"}},
	{Name: "Elasticsearch", Type: "database", Patterns: []string{"elasticsearch", "elastic search"}},
	{Name: "DynamoDB", Type: "database", Patterns: []string{"dynamodb", "dynamo"}},
	{Name: "Cassandra", Type: "database", Patterns: []string{"cassandra"}},
	{Name: "Snowflake", Type: "database", Patterns: []string{"snowflake"}},
	{Name: "BigQuery", Type: "database", Patterns: []string{"bigquery", "big query"}},
	{Name: "SQLite", Type: "database", Patterns: []string{"sqlite"}},
	{Name: "CockroachDB", Type: "database", Patterns: []string{"cockroachdb"}},
	{Name: "Neo4j", Type: "database", Patterns: []string{"neo4j"}},
	{Name: "TimescaleDB", Type: "database", Patterns: []string{"timescaledb"}},
	{Name: "ClickHouse", Type: "database", Patterns: []string{"clickhouse"}},
	{Name: "Supabase", Type: "database", Patterns: []string{"supabase"}},
	{Name: "Firebase", Type: "database", Patterns: []string{"firebase", "firestore"}},

	// cloud_infra
	{Name: "AWS", Type: "cloud_infra", Patterns: []string{"aws", "amazon web services"}},
	{Name: "GCP", Type: "cloud_infra", Patterns: []string{"gcp", "google cloud", "google cloud platform"}},
	{Name: "Azure", Type: "cloud_infra", Patterns: []string{"azure", "microsoft azure"}},
	{Name: "Kubernetes", Type: "cloud_infra", Patterns: []string{"kubernetes", "k8s"}},
	{Name: "Docker", Type: "cloud_infra", Patterns: []string{"docker", "container"}},
	{Name: "Terraform", Type: "cloud_infra", Patterns: []string{"terraform", "iac"}},
	{Name: "Ansible", Type: "cloud_infra", Patterns: []string{"ansible"}},
	{Name: "CI/CD", Type: "cloud_infra", Patterns: []string{"ci/cd", "cicd", "continuous integration", "continuous deployment"}},
	{Name: "Jenkins", Type: "cloud_infra", Patterns: []string{"jenkins"}},
	{Name: "GitHub Actions", Type: "cloud_infra", Patterns: []string{"github actions"}},
	{Name: "Lambda", Type: "cloud_infra", Patterns: []string{"lambda", "aws lambda"}},
	{Name: "EC2", Type: "cloud_infra", Patterns: []string{"ec2"}},
	{Name: "S3", Type: "cloud_infra", Patterns: []string{" s3 ", "aws s3"}},

	// devops_tool
	{Name: "Linux", Type: "devops_tool", Patterns: []string{"linux", "unix"}},
	{Name: "Prometheus", Type: "devops_tool", Patterns: []string{"prometheus"}},
	{Name: "Grafana", Type: "devops_tool", Patterns: []string{"grafana"}},
	{Name: "Datadog", Type: "devops_tool", Patterns: []string{"datadog"}},
	{Name: "Splunk", Type: "devops_tool", Patterns: []string{"splunk"}},
	{Name: "ELK", Type: "devops_tool", Patterns: []string{"elk", "elastic stack"}},
	{Name: "NGINX", Type: "devops_tool", Patterns: []string{"nginx"}},
	{Name: "Helm", Type: "devops_tool", Patterns: []string{"helm"}},

	// version_control
	{Name: "Git", Type: "version_control", Patterns: []string{"git", "version control"}},
	{Name: "GitHub", Type: "version_control", Patterns: []string{"github"}},
	{Name: "GitLab", Type: "version_control", Patterns: []string{"gitlab"}},
	{Name: "Bitbucket", Type: "version_control", Patterns: []string{"bitbucket"}},

	// productivity
	{Name: "Jira", Type: "productivity", Patterns: []string{"jira"}},
	{Name: "Confluence", Type: "productivity", Patterns: []string{"confluence"}},
	{Name: "Slack", Type: "productivity", Patterns: []string{"slack"}},
	{Name: "Notion", Type: "productivity", Patterns: []string{"notion"}},
	{Name: "Linear", Type: "productivity", Patterns: []string{"linear"}},
	{Name: "Asana", Type: "productivity", Patterns: []string{"asana"}},

	// design_tool
	{Name: "Figma", Type: "design_tool", Patterns: []string{"figma"}},
	{Name: "Sketch", Type: "design_tool", Patterns: []string{"sketch"}},
	{Name: "Adobe XD", Type: "design_tool", Patterns: []string{"adobe xd", "xd"}},
	{Name: "Photoshop", Type: "design_tool", Patterns: []string{"photoshop"}},
	{Name: "Illustrator", Type: "design_tool", Patterns: []string{"illustrator"}},

	// testing
	{Name: "Jest", Type: "testing", Patterns: []string{"jest"}},
	{Name: "Cypress", Type: "testing", Patterns: []string{"cypress"}},
	{Name: "Selenium", Type: "testing", Patterns: []string{"selenium"}},
	{Name: "Playwright", Type: "testing", Patterns: []string{"playwright"}},
	{Name: "Pytest", Type: "testing", Patterns: []string{"pytest"}},
	{Name: "JUnit", Type: "testing", Patterns: []string{"junit"}},
	{Name: "Unit testing", Type: "testing", Patterns: []string{"unit test", "unit testing"}},
	{Name: "E2E testing", Type: "testing", Patterns: []string{"e2e", "end-to-end testing", "end to end test"}},
	{Name: "Integration testing", Type: "testing", Patterns: []string{"integration test", "integration testing"}},

	// data_ml
	{Name: "Machine learning", Type: "data_ml", Patterns: []string{"machine learning", "ml ", " ml "}},
	{Name: "Deep learning", Type: "data_ml", Patterns: []string{"deep learning", "neural network"}},
	{Name: "TensorFlow", Type: "data_ml", Patterns: []string{"tensorflow", "tensor flow"}},
	{Name: "PyTorch", Type: "data_ml", Patterns: []string{"pytorch", "py torch"}},
	{Name: "Pandas", Type: "data_ml", Patterns: []string{"pandas"}},
	{Name: "NumPy", Type: "data_ml", Patterns: []string{"numpy", "num py"}},
	{Name: "Scikit-learn", Type: "data_ml", Patterns: []string{"scikit", "sklearn"}},
	{Name: "Data pipelines", Type: "data_ml", Patterns: []string{"data pipeline", "etl", "elt"}},
	{Name: "Spark", Type: "data_ml", Patterns: []string{"spark", "apache spark"}},
	{Name: "LLM", Type: "data_ml", Patterns: []string{"llm", "large language model"}},
	{Name: "NLP", Type: "data_ml", Patterns: []string{"nlp", "natural language processing"}},
	{Name: "Computer vision", Type: "data_ml", Patterns: []string{"computer vision", "cv "}},
	{Name: "A/B testing", Type: "data_ml", Patterns: []string{"a/b test", "ab test", "experimentation"}},
	{Name: "Tableau", Type: "data_ml", Patterns: []string{"tableau"}},
	{Name: "Looker", Type: "data_ml", Patterns: []string{"looker"}},
	{Name: "Power BI", Type: "data_ml", Patterns: []string{"power bi", "powerbi"}},
	{Name: "Data analysis", Type: "data_ml", Patterns: []string{"data analysis", "data analytics"}},

	// security
	{Name: "Security", Type: "security", Patterns: []string{"security", "secure coding"}},
	{Name: "OWASP", Type: "security", Patterns: []string{"owasp"}},
	{Name: "OAuth", Type: "security", Patterns: []string{"oauth", "oauth2"}},
	{Name: "SSO", Type: "security", Patterns: []string{"sso", "single sign-on"}},
	{Name: "Encryption", Type: "security", Patterns: []string{"encryption", "encrypt"}},
	{Name: "Penetration testing", Type: "security", Patterns: []string{"penetration test", "pentest", "pen test"}},

	// mobile
	{Name: "React Native", Type: "mobile", Patterns: []string{"react native", "react-native"}},
	{Name: "Flutter", Type: "mobile", Patterns: []string{"flutter"}},
	{Name: "Android SDK", Type: "mobile", Patterns: []string{"android sdk", "android development"}},
	{Name: "Xcode", Type: "mobile", Patterns: []string{"xcode"}},
	{Name: "iOS development", Type: "mobile", Patterns: []string{"ios development", "ios dev"}},

	// methodology
	{Name: "Agile", Type: "methodology", Patterns: []string{"agile", "agile methodology"}},
	{Name: "Scrum", Type: "methodology", Patterns: []string{"scrum"}},
	{Name: "Kanban", Type: "methodology", Patterns: []string{"kanban"}},
	{Name: "Waterfall", Type: "methodology", Patterns: []string{"waterfall"}},

	// hardware
	{Name: "ASIC design", Type: "hardware", Patterns: []string{"asic", "asic design"}},
	{Name: "RTL design", Type: "hardware", Patterns: []string{"rtl", "rtl design"}},
	{Name: "RTL verification", Type: "hardware", Patterns: []string{"rtl verification"}},
	{Name: "FPGA", Type: "hardware", Patterns: []string{"fpga"}},

	// eda_tool
	{Name: "Synopsys", Type: "eda_tool", Patterns: []string{"synopsys"}},
	{Name: "Cadence", Type: "eda_tool", Patterns: []string{"cadence"}},

	// hardware
	{Name: "Physical design", Type: "hardware", Patterns: []string{"physical design"}},
	{Name: "Formal verification", Type: "hardware", Patterns: []string{"formal verification"}},
	{Name: "SystemVerilog", Type: "hardware", Patterns: []string{"systemverilog", "system verilog"}},
	{Name: "Verilog", Type: "hardware", Patterns: []string{"verilog", "hdl"}},
	{Name: "VHDL", Type: "hardware", Patterns: []string{"vhdl"}},

	// soft_skill
	{Name: "Problem solving", Type: "soft_skill", Patterns: []string{"problem solving", "problem-solving"}},
	{Name: "Mentoring", Type: "soft_skill", Patterns: []string{"mentoring", "mentor"}},
	{Name: "Documentation", Type: "soft_skill", Patterns: []string{"documentation", "document "}},
	{Name: "Code review", Type: "soft_skill", Patterns: []string{"code review", "code reviews"}},
	{Name: "Ownership", Type: "soft_skill", Patterns: []string{"ownership", "own "}},

	// observability
	{Name: "OpenTelemetry", Type: "observability", Patterns: []string{"opentelemetry"}},
	{Name: "New Relic", Type: "observability", Patterns: []string{"new relic"}},
	{Name: "Sentry", Type: "observability", Patterns: []string{"sentry"}},

	// message_queue
	{Name: "Kafka", Type: "message_queue", Patterns: []string{"kafka", "apache kafka"}},
	{Name: "RabbitMQ", Type: "message_queue", Patterns: []string{"rabbitmq"}},
	{Name: "Pulsar", Type: "message_queue", Patterns: []string{"apache pulsar"}},
	{Name: "NATS", Type: "message_queue", Patterns: []string{"nats"}},

	// api_gateway
	{Name: "Apigee", Type: "api_gateway", Patterns: []string{"apigee"}},
	{Name: "Istio", Type: "api_gateway", Patterns: []string{"istio"}},
	{Name: "Envoy", Type: "api_gateway", Patterns: []string{"envoy"}},

	// auth_identity
	{Name: "Auth0", Type: "auth_identity", Patterns: []string{"auth0"}},
	{Name: "Keycloak", Type: "auth_identity", Patterns: []string{"keycloak"}},
	{Name: "Firebase Auth", Type: "auth_identity", Patterns: []string{"firebase auth"}},

	// data_engineering
	{Name: "Airflow", Type: "data_engineering", Patterns: []string{"airflow", "apache airflow"}},
	{Name: "dbt", Type: "data_engineering", Patterns: []string{"dbt"}},
	{Name: "Flink", Type: "data_engineering", Patterns: []string{"flink", "apache flink"}},
	{Name: "Delta Lake", Type: "data_engineering", Patterns: []string{"delta lake"}},

	// ml_ops
	{Name: "MLflow", Type: "ml_ops", Patterns: []string{"mlflow"}},
	{Name: "Kubeflow", Type: "ml_ops", Patterns: []string{"kubeflow"}},
	{Name: "Model serving", Type: "ml_ops", Patterns: []string{"model serving"}},

	// analytics_tracking
	{Name: "Google Analytics", Type: "analytics_tracking", Patterns: []string{"google analytics"}},
	{Name: "Mixpanel", Type: "analytics_tracking", Patterns: []string{"mixpanel"}},
	{Name: "Amplitude", Type: "analytics_tracking", Patterns: []string{"amplitude"}},
	{Name: "Segment", Type: "analytics_tracking", Patterns: []string{"segment"}},
	{Name: "PostHog", Type: "analytics_tracking", Patterns: []string{"posthog"}},

	// build_tool
	{Name: "Gradle", Type: "build_tool", Patterns: []string{"gradle"}},
	{Name: "Maven", Type: "build_tool", Patterns: []string{"maven"}},
	{Name: "Bazel", Type: "build_tool", Patterns: []string{"bazel"}},
	{Name: "Turborepo", Type: "build_tool", Patterns: []string{"turborepo"}},

	// package_manager
	{Name: "npm", Type: "package_manager", Patterns: []string{"npm"}},
	{Name: "Yarn", Type: "package_manager", Patterns: []string{"yarn"}},
	{Name: "pnpm", Type: "package_manager", Patterns: []string{"pnpm"}},

	// search_engine
	{Name: "Solr", Type: "search_engine", Patterns: []string{"solr", "apache solr"}},
	{Name: "Meilisearch", Type: "search_engine", Patterns: []string{"meilisearch"}},

	// cms
	{Name: "WordPress", Type: "cms", Patterns: []string{"wordpress"}},
	{Name: "Contentful", Type: "cms", Patterns: []string{"contentful"}},
	{Name: "Strapi", Type: "cms", Patterns: []string{"strapi"}},

	// ecommerce
	{Name: "Shopify", Type: "ecommerce", Patterns: []string{"shopify"}},
	{Name: "Magento", Type: "ecommerce", Patterns: []string{"magento"}},

	// data_ml
	{Name: "LangChain", Type: "data_ml", Patterns: []string{"langchain"}},
	{Name: "Vector databases", Type: "data_ml", Patterns: []string{"vector database"}},
	{Name: "FAISS", Type: "data_ml", Patterns: []string{"faiss"}},
	{Name: "Pinecone", Type: "data_ml", Patterns: []string{"pinecone"}},
	{Name: "RAG", Type: "data_ml", Patterns: []string{"retrieval augmented", "rag "}},

	// llm_engineering
	{Name: "Large language models", Type: "llm_engineering", Patterns: []string{"large language model", "llm"}},
	{Name: "Transformers", Type: "llm_engineering", Patterns: []string{"transformers"}},
	{Name: "Tokenization", Type: "llm_engineering", Patterns: []string{"tokenization"}},
	{Name: "Embeddings", Type: "llm_engineering", Patterns: []string{"embedding", "embeddings"}},
	{Name: "Prompt engineering", Type: "llm_engineering", Patterns: []string{"prompt engineering"}},
	{Name: "Prompt optimization", Type: "llm_engineering", Patterns: []string{"prompt optimization"}},
	{Name: "Few-shot prompting", Type: "llm_engineering", Patterns: []string{"few shot", "few-shot"}},
	{Name: "Chain-of-thought prompting", Type: "llm_engineering", Patterns: []string{"chain of thought"}},
	{Name: "Fine-tuning", Type: "llm_engineering", Patterns: []string{"fine tuning", "finetuning"}},
	{Name: "Instruction tuning", Type: "llm_engineering", Patterns: []string{"instruction tuning"}},
	{Name: "Parameter-efficient fine-tuning", Type: "llm_engineering", Patterns: []string{"peft"}},
	{Name: "LoRA", Type: "llm_engineering", Patterns: []string{"lora", "low rank adaptation"}},
	{Name: "RLHF", Type: "llm_engineering", Patterns: []string{"rlhf", "reinforcement learning from human feedback"}},
	{Name: "Retrieval-augmented generation", Type: "llm_engineering", Patterns: []string{"rag", "retrieval augmented"}},
	{Name: "Semantic search", Type: "llm_engineering", Patterns: []string{"semantic search"}},
	{Name: "Hybrid search", Type: "llm_engineering", Patterns: []string{"hybrid search"}},
	{Name: "Vector indexing", Type: "llm_engineering", Patterns: []string{"vector index", "vector indexing"}},
	{Name: "ANN search", Type: "llm_engineering", Patterns: []string{"approximate nearest neighbor", "ann search"}},
	{Name: "Reranking", Type: "llm_engineering", Patterns: []string{"reranking", "re ranking"}},
	{Name: "LlamaIndex", Type: "llm_engineering", Patterns: []string{"llamaindex"}},
	{Name: "Hugging Face", Type: "llm_engineering", Patterns: []string{"huggingface", "hugging face"}},
	{Name: "Transformers library", Type: "llm_engineering", Patterns: []string{"huggingface transformers"}},
	{Name: "AI agents", Type: "llm_engineering", Patterns: []string{"ai agent", "ai agents"}},
	{Name: "Tool calling", Type: "llm_engineering", Patterns: []string{"tool calling"}},
	{Name: "Function calling", Type: "llm_engineering", Patterns: []string{"function calling"}},
	{Name: "Multi-agent systems", Type: "llm_engineering", Patterns: []string{"multi agent"}},
	{Name: "Agent orchestration", Type: "llm_engineering", Patterns: []string{"agent orchestration"}},
	{Name: "Inference optimization", Type: "llm_engineering", Patterns: []string{"inference optimization"}},
	{Name: "Quantization", Type: "llm_engineering", Patterns: []string{"quantization"}},
	{Name: "Model distillation", Type: "llm_engineering", Patterns: []string{"model distillation"}},
	{Name: "ONNX", Type: "llm_engineering", Patterns: []string{"onnx"}},
	{Name: "TensorRT", Type: "llm_engineering", Patterns: []string{"tensorrt"}},
	{Name: "Triton Inference Server", Type: "llm_engineering", Patterns: []string{"triton inference server"}},
	{Name: "Distributed training", Type: "llm_engineering", Patterns: []string{"distributed training"}},
	{Name: "Data parallelism", Type: "llm_engineering", Patterns: []string{"data parallelism"}},
	{Name: "Model parallelism", Type: "llm_engineering", Patterns: []string{"model parallelism"}},
	{Name: "DeepSpeed", Type: "llm_engineering", Patterns: []string{"deepspeed"}},
	{Name: "CUDA", Type: "llm_engineering", Patterns: []string{"cuda"}},
	{Name: "GPU acceleration", Type: "llm_engineering", Patterns: []string{"gpu acceleration"}},
	{Name: "LLM evaluation", Type: "llm_engineering", Patterns: []string{"llm evaluation"}},
	{Name: "Model evaluation", Type: "llm_engineering", Patterns: []string{"model evaluation"}},
	{Name: "Human-in-the-loop", Type: "llm_engineering", Patterns: []string{"human in the loop"}},
	{Name: "AI safety", Type: "llm_engineering", Patterns: []string{"ai safety"}},
	{Name: "Bias mitigation", Type: "llm_engineering", Patterns: []string{"bias mitigation"}},
	{Name: "Red teaming", Type: "llm_engineering", Patterns: []string{"red teaming"}},
	{Name: "Dataset curation", Type: "llm_engineering", Patterns: []string{"dataset curation"}},
	{Name: "Synthetic data", Type: "llm_engineering", Patterns: []string{"synthetic data"}},
	{Name: "Data labeling", Type: "llm_engineering", Patterns: []string{"data labeling"}},
	{Name: "Data augmentation", Type: "llm_engineering", Patterns: []string{"data augmentation"}},
	{Name: "Llama", Type: "llm_engineering", Patterns: []string{"llama"}},
	{Name: "Mistral", Type: "llm_engineering", Patterns: []string{"mistral"}},
	{Name: "Gemma", Type: "llm_engineering", Patterns: []string{"gemma"}},
	{Name: "Stable Diffusion", Type: "llm_engineering", Patterns: []string{"stable diffusion"}},
}
