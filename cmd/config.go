package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFromName string
	SMTPFrom     string

	CompanyName    string
	CompanyAddress string

	// RequireSentBeforePaid rejects payments against bills that have not
	// been dispatched to the customer yet.
	RequireSentBeforePaid bool

	ReminderSchedule string
	ReminderDueDays  int
}
