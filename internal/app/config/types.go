package config

type (
	InternalConfig struct {
		App      App
		Matching Matching
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	// Matching carries the engine gate and tunables explicitly, so the
	// scoring/ranking core never reads ambient configuration itself.
	Matching struct {
		Enabled             bool
		MaxProposals        int
		ExactScoreThreshold float64
		PoolCacheTTLSeconds int
		AnalyticsQueue      string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
