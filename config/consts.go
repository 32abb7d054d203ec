package config

const (
	EnvStoragePath = "AGENTTOOLS_STORAGE_PATH"
	EnvLogLevel    = "AGENTTOOLS_LOG_LEVEL"
	EnvLogNoColor  = "AGENTTOOLS_LOG_NOCOLOR"

	appDirName  = "agenttools"
	emptyString = ""
)

var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

const (
	errMsgNilService     = "Config service is nil."
	errMsgNotInitialized = "Config service has not been initialized."
	errMsgReadFile       = "Unable to read configuration file."
	errMsgLoadFile       = "Unable to load configuration file."
	errMsgParseFile      = "Unable to parse configuration file."
	errMsgUnknownFormat  = "Unsupported configuration file format."
	errMsgConfigInvalid  = "Application configuration is invalid."
	errMsgEncode         = "Unable to encode configuration."
)
