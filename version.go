package interval

// Version is the current version of the interval module.
const Version = "1.0.0"
