package model

// Period is the coarse time window a report aggregates over.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

// ValidPeriod reports whether p is one of the supported windows.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// Pagination is the page metadata the backend pairs with every list-shaped
// report. The per-family total aliases mirror the backend payloads; only one
// of them is set for a given report.
type Pagination struct {
	CurrentPage        int  `json:"currentPage"`
	TotalPages         int  `json:"totalPages"`
	TotalItems         int  `json:"totalItems,omitempty"`
	TotalTransactions  int  `json:"totalTransactions,omitempty"`
	TotalEvents        int  `json:"totalEvents,omitempty"`
	TotalUsers         int  `json:"totalUsers,omitempty"`
	TotalEventPlanners int  `json:"totalEventPlanners,omitempty"`
	Limit              int  `json:"limit"`
	HasNextPage        bool `json:"hasNextPage"`
	HasPrevPage        bool `json:"hasPrevPage"`
}

// StatWithGrowth is a counter with its in-period delta and growth percentage.
type StatWithGrowth struct {
	Total    int     `json:"total"`
	InPeriod int     `json:"inPeriod"`
	Growth   float64 `json:"growth"`
}

// EventsByStatus breaks event counts down by moderation status.
type EventsByStatus struct {
	Draft     int `json:"draft"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Suspended int `json:"suspended"`
	Rejected  int `json:"rejected"`
}

// EventsStats extends StatWithGrowth with the by-status breakdown.
type EventsStats struct {
	StatWithGrowth
	ByStatus EventsByStatus `json:"byStatus"`
}

// PlanBreakdown is revenue attribution for one subscription plan.
type PlanBreakdown struct {
	Plan             string `json:"plan"` // weekly | monthly
	RevenueCents     int64  `json:"revenueCents"`
	RevenueFormatted string `json:"revenueFormatted"`
	Count            int    `json:"count"`
}

// RevenueStats aggregates subscription revenue for the dashboard overview.
type RevenueStats struct {
	TotalCents          int64           `json:"totalCents"`
	TotalFormatted      string          `json:"totalFormatted"`
	Growth              float64         `json:"growth"`
	ActiveSubscriptions int             `json:"activeSubscriptions"`
	TotalSubscriptions  int             `json:"totalSubscriptions"`
	ByPlan              []PlanBreakdown `json:"byPlan"`
}

// EngagementStats aggregates engagement counters across all events.
type EngagementStats struct {
	TotalViews           int `json:"totalViews"`
	TotalUniqueViews     int `json:"totalUniqueViews"`
	TotalLikes           int `json:"totalLikes"`
	TotalShares          int `json:"totalShares"`
	TotalComments        int `json:"totalComments"`
	TotalRsvps           int `json:"totalRsvps"`
	TotalTicketRedirects int `json:"totalTicketRedirects"`
}

// DateRange is the resolved start/end of a period selection.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DashboardOverview is the immutable aggregate snapshot for one period.
type DashboardOverview struct {
	Period        Period          `json:"period"`
	DateRange     DateRange       `json:"dateRange"`
	Users         StatWithGrowth  `json:"users"`
	EventPlanners StatWithGrowth  `json:"eventPlanners"`
	Events        EventsStats     `json:"events"`
	Revenue       RevenueStats    `json:"revenue"`
	Engagement    EngagementStats `json:"engagement"`
}

// EventPlannerInfo is the denormalized planner snapshot embedded in
// transactions and event records. It shares no identity enforcement with the
// full EventPlannerReportItem.
type EventPlannerInfo struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Photo   *string `json:"photo"`
}

// EventInfo is the denormalized event snapshot embedded in transactions.
type EventInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DateTime string `json:"dateTime"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// Transaction is one payments-report row.
type Transaction struct {
	ID                   string            `json:"id"`
	StripeSubscriptionID string            `json:"stripeSubscriptionId"`
	EventPlanner         *EventPlannerInfo `json:"eventPlanner"`
	Event                *EventInfo        `json:"event"`
	Plan                 string            `json:"plan"`   // weekly | monthly
	Amount               int64             `json:"amount"` // cents
	AmountFormatted      string            `json:"amountFormatted"`
	Status               string            `json:"status"` // active | canceled | past_due | unpaid
	CurrentPeriodStart   string            `json:"currentPeriodStart"`
	CurrentPeriodEnd     string            `json:"currentPeriodEnd"`
	CancelAtPeriodEnd    bool              `json:"cancelAtPeriodEnd"`
	CanceledAt           *string           `json:"canceledAt"`
	CreatedAt            string            `json:"createdAt"`
	UpdatedAt            string            `json:"updatedAt"`
}

// StatusRevenue is a (status, count, revenue) summary bucket.
type StatusRevenue struct {
	Status           string `json:"status"`
	Count            int    `json:"count"`
	Revenue          int64  `json:"revenue"`
	RevenueFormatted string `json:"revenueFormatted"`
}

// PlanRevenue is a (plan, count, revenue) summary bucket.
type PlanRevenue struct {
	Plan             string `json:"plan"`
	Count            int    `json:"count"`
	Revenue          int64  `json:"revenue"`
	RevenueFormatted string `json:"revenueFormatted"`
}

// PaymentsSummary aggregates the filtered transaction set.
type PaymentsSummary struct {
	TotalRevenue          int64           `json:"totalRevenue"`
	TotalRevenueFormatted string          `json:"totalRevenueFormatted"`
	TotalTransactions     int             `json:"totalTransactions"`
	ByStatus              []StatusRevenue `json:"byStatus"`
	ByPlan                []PlanRevenue   `json:"byPlan"`
}

// PaymentsFilters echoes the filters the backend applied.
type PaymentsFilters struct {
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	Status         *string `json:"status"`
	Plan           *string `json:"plan"`
	EventPlannerID *string `json:"eventPlannerId"`
	Search         *string `json:"search"`
	SortBy         string  `json:"sortBy"`
	SortOrder      string  `json:"sortOrder"`
}

// PaymentsReportData is the payments report payload.
type PaymentsReportData struct {
	Transactions []Transaction   `json:"transactions"`
	Pagination   Pagination      `json:"pagination"`
	Summary      PaymentsSummary `json:"summary"`
	Filters      PaymentsFilters `json:"filters"`
}

// Location is a GeoJSON-style point with a display address.
type Location struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
	Address     string     `json:"address"`
}

// RsvpBreakdown splits RSVPs by response.
type RsvpBreakdown struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Maybe     int `json:"maybe"`
	Declined  int `json:"declined"`
}

// EventMetrics is the optional engagement block on an event report row.
type EventMetrics struct {
	Views           int           `json:"views"`
	UniqueViews     int           `json:"uniqueViews"`
	Likes           int           `json:"likes"`
	Shares          int           `json:"shares"`
	Comments        int           `json:"comments"`
	Rsvps           RsvpBreakdown `json:"rsvps"`
	TicketRedirects int           `json:"ticketRedirects"`
	EngagementRate  float64       `json:"engagementRate"`
}

// EventReportItem is one events-report row.
type EventReportItem struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	DateTime         string            `json:"dateTime"`
	Category         string            `json:"category"`
	Status           string            `json:"status"` // draft | pending | approved | suspended | rejected
	PaymentStatus    *string           `json:"paymentStatus"`
	TicketPrice      float64           `json:"ticketPrice"`
	TicketLink       *string           `json:"ticketLink"`
	Location         Location          `json:"location"`
	Images           int               `json:"images"`
	Videos           int               `json:"videos"`
	IsTrialActive    bool              `json:"isTrialActive"`
	TrialEndsAt      *string           `json:"trialEndsAt"`
	SubscriptionPlan *string           `json:"subscriptionPlan"`
	Creator          *EventPlannerInfo `json:"creator"`
	Metrics          *EventMetrics     `json:"metrics"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

// EventsSummary aggregates the filtered event set.
type EventsSummary struct {
	TotalEvents     int            `json:"totalEvents"`
	ByStatus        map[string]int `json:"byStatus"`
	ByCategory      map[string]int `json:"byCategory"`
	ByPaymentStatus map[string]int `json:"byPaymentStatus"`
}

// EventsReportData is the events report payload.
type EventsReportData struct {
	Events     []EventReportItem `json:"events"`
	Pagination Pagination        `json:"pagination"`
	Summary    EventsSummary     `json:"summary"`
	Filters    map[string]any    `json:"filters"`
}

// UserReportItem is one users-report row.
type UserReportItem struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Photo     *string `json:"photo"`
	Address   *string `json:"address"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// RegistrationTrend is one point of a registrations-over-time series.
type RegistrationTrend struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ActivityBreakdown counts user activity by kind.
type ActivityBreakdown struct {
	CreatedEvent   int `json:"created_event"`
	CommentedEvent int `json:"commented_event"`
	LikedEvent     int `json:"liked_event"`
	RsvpEvent      int `json:"rsvp_event"`
	BecameFriends  int `json:"became_friends"`
}

// UsersSummary aggregates the filtered user set.
type UsersSummary struct {
	TotalUsers        int                 `json:"totalUsers"`
	RegistrationTrend []RegistrationTrend `json:"registrationTrend"`
	ActivityBreakdown ActivityBreakdown   `json:"activityBreakdown"`
}

// UsersReportData is the users report payload.
type UsersReportData struct {
	Users      []UserReportItem `json:"users"`
	Pagination Pagination       `json:"pagination"`
	Summary    UsersSummary     `json:"summary"`
	Filters    map[string]any   `json:"filters"`
}

// PlannerEventCounts breaks one planner's events down by status.
type PlannerEventCounts struct {
	Total     int `json:"total"`
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
	Suspended int `json:"suspended"`
}

// PlannerRevenue summarizes one planner's subscription revenue.
type PlannerRevenue struct {
	TotalCents          int64  `json:"totalCents"`
	TotalFormatted      string `json:"totalFormatted"`
	ActiveSubscriptions int    `json:"activeSubscriptions"`
	TotalSubscriptions  int    `json:"totalSubscriptions"`
}

// EventPlannerReportItem is one event-planners-report row.
type EventPlannerReportItem struct {
	UserReportItem
	CompanyName      *string            `json:"companyName"`
	StripeCustomerID *string            `json:"stripeCustomerId"`
	Events           PlannerEventCounts `json:"events"`
	Revenue          PlannerRevenue     `json:"revenue"`
}

// EventPlannersSummary aggregates the planner set.
type EventPlannersSummary struct {
	TotalEventPlanners    int                 `json:"totalEventPlanners"`
	TotalEvents           int                 `json:"totalEvents"`
	ApprovedEvents        int                 `json:"approvedEvents"`
	TotalRevenue          int64               `json:"totalRevenue"`
	TotalRevenueFormatted string              `json:"totalRevenueFormatted"`
	ActiveSubscriptions   int                 `json:"activeSubscriptions"`
	RegistrationTrend     []RegistrationTrend `json:"registrationTrend"`
}

// EventPlannersReportData is the event-planners report payload.
type EventPlannersReportData struct {
	EventPlanners []EventPlannerReportItem `json:"eventPlanners"`
	Pagination    Pagination               `json:"pagination"`
	Summary       EventPlannersSummary     `json:"summary"`
	Filters       map[string]any           `json:"filters"`
}

// Dataset is one chart series.
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// ChartData is the label/series shape consumed by the dashboard charts.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// ChartPayload is the per-chart envelope body the backend returns.
type ChartPayload struct {
	ChartData ChartData `json:"chartData"`
	Period    Period    `json:"period"`
	TimeRange string    `json:"timeRange"`
}
