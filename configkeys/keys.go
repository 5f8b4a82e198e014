package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigFnPrefix = ConfigPrefix + delimiter + "fn"

	ConfigFnMemoPrefix     = ConfigFnPrefix + delimiter + "memo"
	ConfigFnMemoBackend    = ConfigFnMemoPrefix + delimiter + "backend"
	ConfigFnMemoMaxEntries = ConfigFnMemoPrefix + delimiter + "max_entries"

	ConfigFnMemoRistrettoPrefix      = ConfigFnMemoPrefix + delimiter + "ristretto"
	ConfigFnMemoRistrettoNumCounters = ConfigFnMemoRistrettoPrefix + delimiter + "num_counters"
	ConfigFnMemoRistrettoBufferItems = ConfigFnMemoRistrettoPrefix + delimiter + "buffer_items"
)
