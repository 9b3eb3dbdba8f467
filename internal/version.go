package internal

// Version is the current release of the loanwords tool.
const Version = "1.0.0"
