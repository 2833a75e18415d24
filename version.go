package racket

// Version is the release tag printed by the CLI.
const Version = "0.1.0"

// BuildDate is stamped at release build time; "dev" otherwise.
var BuildDate = "dev"
