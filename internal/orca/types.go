package orca

import "time"

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type Workspace struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PublicAPIKey string    `json:"public_api_key"`
	CreatedAt    time.Time `json:"created_at"`
}

type Member struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type Invite struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatSession struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	WebSearchEnabled bool      `json:"web_search_enabled"`
	CreatedAt        time.Time `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	ID               string    `json:"id"`
	Role             string    `json:"role"`
	Content          string    `json:"content"`
	SQL              string    `json:"sql,omitempty"`
	ApprovalRequired bool      `json:"approval_required,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// QueryResult is the tabular output of an executed SQL statement.
type QueryResult struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

const (
	DocumentStatusIndexed    = "indexed"
	DocumentStatusProcessing = "processing"
	DocumentStatusError      = "error"
	DocumentStatusPending    = "pending"
)

type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FileType  string    `json:"file_type"`
	Status    string    `json:"status"`
	Chunks    int       `json:"chunks,omitempty"`
	Size      int64     `json:"size,omitempty"`
	Pages     int       `json:"pages,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TableColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type DatabaseTable struct {
	Name    string        `json:"name"`
	Columns []TableColumn `json:"columns"`
	Allowed bool          `json:"allowed"`
}

type AgentConnectionInput struct {
	Engine   string `json:"engine"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type AgentStatus struct {
	Connected bool   `json:"connected"`
	Version   string `json:"version,omitempty"`
	Message   string `json:"message,omitempty"`
}

type AnalyticsPoint struct {
	Date    string `json:"date"`
	Queries int    `json:"queries"`
}

type AnalyticsReport struct {
	TotalDocuments int              `json:"total_documents"`
	TotalQueries   int              `json:"total_queries"`
	Series         []AnalyticsPoint `json:"series"`
}

type BillingSummary struct {
	Plan           string    `json:"plan"`
	Seats          int       `json:"seats"`
	MonthlyQueries int       `json:"monthly_queries"`
	QueryLimit     int       `json:"query_limit"`
	RenewsAt       time.Time `json:"renews_at"`
}

type AuditEntry struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	CreatedAt time.Time `json:"created_at"`
}

type Conversation struct {
	ID            string    `json:"id"`
	VisitorID     string    `json:"visitor_id"`
	Status        string    `json:"status"`
	HumanRequired bool      `json:"human_required"`
	CreatedAt     time.Time `json:"created_at"`
}

type ConversationMessage struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
