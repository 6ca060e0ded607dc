package skills

// Built-in catalog: 200+ IT/software and marketing terms with
// Turkish-English variants mixed into the category lists on purpose, so the
// extractor can hit either language form directly.
var defaultCategories = map[Category][]string{
	CategoryFrontend: {
		"react", "react.js", "reactjs", "vue", "vue.js", "vuejs", "angular", "angularjs",
		"javascript", "js", "typescript", "ts", "html", "html5", "css", "css3",
		"sass", "scss", "less", "tailwind", "tailwindcss", "bootstrap",
		"next.js", "nextjs", "nuxt", "nuxt.js", "gatsby", "svelte", "jquery",
		"webpack", "vite", "babel", "redux", "mobx", "zustand", "recoil",
		"material ui", "mui", "ant design", "chakra ui", "styled-components",
		"react native", "react-native", "reactnative", "rn", "flutter", "dart", "ionic", "expo",
		"pwa", "responsive design", "duyarlı tasarım", "web components",
	},
	CategoryBackend: {
		"node.js", "nodejs", "node", "express", "express.js", "expressjs",
		"nestjs", "nest.js", "fastify", "koa",
		"python", "django", "flask", "fastapi",
		"java", "spring", "spring boot", "springboot",
		"c#", "csharp", ".net", "dotnet", "asp.net", "asp.net core",
		"php", "laravel", "symfony", "codeigniter",
		"ruby", "ruby on rails", "rails",
		"go", "golang", "gin", "fiber",
		"rust", "kotlin", "scala",
		"graphql", "rest", "restful", "rest api", "grpc", "websocket",
		"microservices", "mikroservis", "monolith", "serverless",
		"swagger", "openapi",
	},
	CategoryDatabase: {
		"sql", "mysql", "postgresql", "postgres", "sqlite",
		"mongodb", "mongo", "redis", "elasticsearch",
		"firebase", "firestore", "dynamodb", "cassandra", "couchdb",
		"oracle", "mssql", "sql server", "mariadb",
		"prisma", "sequelize", "typeorm", "mongoose", "knex",
		"nosql", "veritabanı", "database",
	},
	CategoryDevOps: {
		"docker", "kubernetes", "k8s", "jenkins", "ci/cd", "cicd",
		"aws", "amazon web services", "azure", "gcp", "google cloud",
		"terraform", "ansible", "puppet", "chef",
		"nginx", "apache", "linux", "ubuntu", "centos",
		"git", "github", "gitlab", "bitbucket", "svn",
		"github actions", "circleci", "travis ci",
		"prometheus", "grafana", "elk", "datadog",
		"heroku", "vercel", "netlify", "digitalocean",
	},
	CategoryTesting: {
		"jest", "mocha", "chai", "cypress", "selenium", "playwright",
		"junit", "pytest", "unittest", "rspec",
		"test driven development", "tdd", "bdd",
		"unit test", "birim test", "integration test", "entegrasyon testi",
		"e2e", "end-to-end", "load testing", "yük testi",
		"postman", "insomnia", "swagger",
	},
	CategoryMobile: {
		"ios", "android", "swift", "objective-c", "kotlin",
		"react native", "react-native", "reactnative", "swiftui", "swift ui", "flutter", "dart", "xamarin",
		"mobile development", "mobil geliştirme", "mobil uygulama",
	},
	CategoryAIML: {
		"machine learning", "makine öğrenmesi", "ml",
		"deep learning", "derin öğrenme", "dl",
		"artificial intelligence", "yapay zeka", "ai", "yz",
		"tensorflow", "pytorch", "keras", "scikit-learn", "sklearn",
		"nlp", "doğal dil işleme", "natural language processing",
		"computer vision", "bilgisayarlı görü",
		"opencv", "huggingface", "transformers",
		"pandas", "numpy", "matplotlib", "seaborn",
		"data science", "veri bilimi", "data analysis", "veri analizi",
		"big data", "büyük veri", "hadoop", "spark", "airflow",
	},
	CategoryMarketing: {
		"marketing", "pazarlama", "digital marketing", "dijital pazarlama",
		"content marketing", "içerik pazarlaması", "icerik pazarlamasi",
		"social media", "sosyal medya", "social media management", "sosyal medya yönetimi",
		"brand management", "marka yönetimi",
		"campaign management", "kampanya yönetimi",
		"email marketing", "e-posta pazarlama", "eposta pazarlama",
		"performance marketing", "performans pazarlaması",
		"advertising analysis", "reklam analizi",
		"market research", "pazar araştırması", "pazar arastirmasi",
		"seo", "sem", "google ads", "meta ads",
		"a/b test", "ab test", "conversion rate", "dönüşüm oranı", "donusum orani",
		"customer engagement", "müşteri etkileşimi", "musteri etkilesimi",
		"brand positioning", "marka konumlandırma", "marka konumlandirma",
		"communication strategy", "iletişim yönetimi", "iletisim yonetimi",
	},
	CategorySoftSkills: {
		"iletişim", "communication", "takım çalışması", "teamwork",
		"problem çözme", "problem solving", "analitik düşünme", "analytical thinking",
		"liderlik", "leadership", "proje yönetimi", "project management",
		"zaman yönetimi", "time management", "agile", "scrum", "kanban",
		"jira", "trello", "asana", "confluence", "notion",
		"sunum", "presentation", "müşteri ilişkileri", "client relations",
	},
	CategorySecurity: {
		"cybersecurity", "siber güvenlik", "information security", "bilgi güvenliği",
		"oauth", "jwt", "ssl", "tls", "https",
		"encryption", "şifreleme", "authentication", "kimlik doğrulama",
		"authorization", "yetkilendirme", "owasp", "penetration testing",
		"firewall", "vpn", "soc", "siem",
	},
	CategoryOther: {
		"figma", "sketch", "adobe xd", "photoshop", "illustrator",
		"ui/ux", "ui ux", "ui-ux", "ux/ui", "ui", "ux", "kullanıcı deneyimi", "kullanıcı arayüzü",
		"design patterns", "tasarım desenleri", "solid", "oop",
		"functional programming", "fonksiyonel programlama",
		"api", "sdk", "cli",
		"blockchain", "web3", "solidity", "ethereum",
		"iot", "embedded", "gömülü sistem",
		"erp", "sap", "crm", "salesforce",
	},
}

// Turkish-English and abbreviation synonym groups, canonical -> variants.
// Order matters: a variant listed under two canonicals (react-native, ux)
// resolves to the earlier group.
var defaultSynonyms = []SynonymGroup{
	{"react native", []string{"rn", "react-native", "reactnative"}},
	{"swiftui", []string{"swift ui", "swift-ui", "swift uı"}},
	{"react", []string{"react.js", "reactjs", "react-js", "react native", "react-native", "reactnative"}},
	{"vue", []string{"vue.js", "vuejs"}},
	{"angular", []string{"angularjs", "angular.js"}},
	{"node.js", []string{"nodejs", "node"}},
	{"express", []string{"express.js", "expressjs"}},
	{"next.js", []string{"nextjs", "next"}},
	{"typescript", []string{"ts"}},
	{"javascript", []string{"js"}},
	{".net", []string{"dotnet", "dot net"}},
	{"c#", []string{"csharp", "c sharp"}},
	{"asp.net", []string{"asp.net core", "aspnet"}},
	{"postgresql", []string{"postgres", "pgsql"}},
	{"mongodb", []string{"mongo"}},
	{"kubernetes", []string{"k8s"}},
	{"ci/cd", []string{"cicd", "ci cd", "sürekli entegrasyon"}},
	{"machine learning", []string{"makine öğrenmesi", "makine öğrenimi", "ml"}},
	{"deep learning", []string{"derin öğrenme", "dl"}},
	{"artificial intelligence", []string{"yapay zeka", "ai", "yz"}},
	{"natural language processing", []string{"doğal dil işleme", "nlp", "ddi"}},
	{"data science", []string{"veri bilimi"}},
	{"data analysis", []string{"veri analizi", "veri analitiği"}},
	{"digital marketing", []string{"dijital pazarlama"}},
	{"content marketing", []string{"içerik pazarlaması", "icerik pazarlamasi"}},
	{"social media management", []string{"sosyal medya yönetimi", "sosyal medya"}},
	{"brand management", []string{"marka yönetimi"}},
	{"email marketing", []string{"e-posta pazarlama", "eposta pazarlama"}},
	{"advertising analysis", []string{"reklam analizi"}},
	{"market research", []string{"pazar araştırması", "pazar arastirmasi"}},
	{"campaign management", []string{"kampanya yönetimi"}},
	{"conversion rate", []string{"dönüşüm oranı", "donusum orani"}},
	{"customer engagement", []string{"müşteri etkileşimi", "musteri etkilesimi"}},
	{"big data", []string{"büyük veri"}},
	{"computer vision", []string{"bilgisayarlı görü", "görüntü işleme"}},
	{"agile", []string{"çevik", "çevik metodoloji"}},
	{"scrum", []string{"scrum metodolojisi"}},
	{"microservices", []string{"mikroservis", "mikro servis"}},
	{"unit test", []string{"birim test", "birim testi"}},
	{"integration test", []string{"entegrasyon testi"}},
	{"project management", []string{"proje yönetimi"}},
	{"teamwork", []string{"takım çalışması", "ekip çalışması"}},
	{"problem solving", []string{"problem çözme", "sorun çözme"}},
	{"communication", []string{"iletişim", "iletişim becerisi"}},
	{"leadership", []string{"liderlik"}},
	{"responsive design", []string{"duyarlı tasarım", "responsive tasarım"}},
	{"mobile development", []string{"mobil geliştirme", "mobil uygulama geliştirme"}},
	{"cybersecurity", []string{"siber güvenlik"}},
	{"authentication", []string{"kimlik doğrulama"}},
	{"authorization", []string{"yetkilendirme"}},
	{"database", []string{"veritabanı", "veri tabanı"}},
	{"software development", []string{"yazılım geliştirme"}},
	{"web development", []string{"web geliştirme"}},
	{"full stack", []string{"full-stack", "fullstack", "tam yığın"}},
	{"front end", []string{"frontend", "front-end", "ön yüz"}},
	{"back end", []string{"backend", "back-end", "arka yüz"}},
	{"devops", []string{"dev ops", "dev-ops"}},
	{"rest api", []string{"restful api", "restful apis", "rest api's", "rest", "restful", "rest apı"}},
	{"ui/ux", []string{"ui ux", "ui-ux", "ux/ui", "ux-ui", "ui", "ux", "user interface", "user experience", "kullanıcı arayüzü", "kullanıcı deneyimi"}},
	{"sql", []string{"structured query language"}},
	{"nosql", []string{"no-sql", "non-sql"}},
	{"version control", []string{"versiyon kontrol", "sürüm kontrol"}},
	{"object oriented", []string{"nesne yönelimli", "oop", "object-oriented"}},
	{"design patterns", []string{"tasarım desenleri", "tasarım kalıpları"}},
	{"user experience", []string{"kullanıcı deneyimi", "ux"}},
	{"user interface", []string{"kullanıcı arayüzü", "ui"}},
}
