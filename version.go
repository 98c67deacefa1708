package blindsearch

// Version is the release of the blindsearch module.
const Version = "0.3.0"
