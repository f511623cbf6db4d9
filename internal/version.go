package internal

// Version is the application version shown by --version.
const Version = "0.4.0"
