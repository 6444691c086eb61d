package domain

// DateLayout is the calendar date format used in URLs, CLI flags and storage keys
const DateLayout = "2006-01-02"
