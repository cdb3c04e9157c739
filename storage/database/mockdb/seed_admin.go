package mockdb

import "github.com/trezcool/masterly/core/admin"

func series(name string, labels []string, values ...float64) admin.Series {
	s := admin.Series{Name: name, Points: make([]admin.Point, 0, len(values))}
	for i, v := range values {
		s.Points = append(s.Points, admin.Point{Label: labels[i], Value: v})
	}
	return s
}

func chart(title string, series ...admin.Series) admin.Chart {
	return admin.Chart{Title: title, Series: series}
}

func grants(section, label string, kv ...interface{}) admin.Permission {
	p := admin.Permission{Section: section, Label: label}
	for i := 0; i+1 < len(kv); i += 2 {
		p.Grants = append(p.Grants, admin.Grant{Action: kv[i].(string), Allowed: kv[i+1].(bool)})
	}
	return p
}

// permissions lists the grants of a role in a fixed section order:
// users, courses, content (read/write/delete), analytics (read/write/export),
// certifications (read/write/revoke), settings (read/write).
func permissions(flags ...bool) []admin.Permission {
	return []admin.Permission{
		grants("users", "Users", "read", flags[0], "write", flags[1], "delete", flags[2]),
		grants("courses", "Courses", "read", flags[3], "write", flags[4], "delete", flags[5]),
		grants("content", "Content", "read", flags[6], "write", flags[7], "delete", flags[8]),
		grants("analytics", "Analytics", "read", flags[9], "write", flags[10], "export", flags[11]),
		grants("certifications", "Certifications", "read", flags[12], "write", flags[13], "revoke", flags[14]),
		grants("settings", "Settings", "read", flags[15], "write", flags[16]),
	}
}

func seedAdmin() *adminTable {
	const T, F = true, false

	growthDays := []string{"Jan 1", "Jan 5", "Jan 10", "Jan 15", "Jan 20", "Jan 25", "Jan 30"}
	months := []string{"Aug", "Sep", "Oct", "Nov", "Dec", "Jan"}
	courses := []string{"AI Fundamentals", "Prompt Engineering", "AI for Freelancers", "AI for Business"}
	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	lessons := []string{"Intro", "Lesson 2", "Lesson 3", "Lesson 4", "Lesson 5", "Lesson 6", "Lesson 7", "Final"}
	cohorts := []string{"Aug W1", "Aug W2", "Aug W3", "Aug W4", "Sep W1"}

	return &adminTable{
		overview: admin.Overview{
			Stats: []admin.Stat{
				{Label: "Total Users", Value: "50,247", Change: "+12.5%", Up: true},
				{Label: "Active Learners", Value: "12,847", Change: "+8.3%", Up: true},
				{Label: "Course Completions", Value: "8,392", Change: "+15.2%", Up: true},
				{Label: "Certificates Issued", Value: "3,847", Change: "+22.1%", Up: true},
				{Label: "Monthly Revenue", Value: "$32,400", Change: "+18.7%", Up: true},
				{Label: "Engagement Score", Value: "87.3%", Change: "+2.4%", Up: true},
			},
			Charts: []admin.Chart{
				chart("User Growth",
					series("Users", growthDays, 4200, 4500, 4800, 5200, 5600, 6100, 6800),
					series("Active", growthDays, 2800, 3100, 3300, 3600, 3900, 4200, 4700),
				),
				chart("User Plans", series("Users", []string{"Free", "Pro", "Enterprise"}, 4200, 2100, 480)),
				chart("Revenue Trend", series("Revenue", months, 12500, 15200, 18900, 22400, 28100, 32400)),
				chart("Course Performance",
					series("Completed", courses, 850, 620, 430, 280),
					series("Enrolled", courses, 1200, 950, 780, 520),
				),
				chart("Conversion Funnel", series("Learners",
					[]string{"Signups", "Active Learners", "Course Completers", "Certified"},
					12500, 8700, 4200, 2847)),
			},
			Activity: []admin.Activity{
				{ID: 1, User: "Sarah Chen", Action: "completed", Target: "AI Fundamentals", Time: "2 min ago"},
				{ID: 2, User: "Marcus Johnson", Action: "enrolled in", Target: "Prompt Engineering", Time: "5 min ago"},
				{ID: 3, User: "Elena Rodriguez", Action: "earned certificate", Target: "AI Fundamentals", Time: "12 min ago"},
				{ID: 4, User: "David Kim", Action: "submitted", Target: "Project: Image Classifier", Time: "18 min ago"},
				{ID: 5, User: "Priya Patel", Action: "started", Target: "AI for Business", Time: "25 min ago"},
			},
			Alerts: []admin.Alert{
				{ID: 1, Type: "warning", Message: "3 users reported video playback issues in Lesson 4.2", Time: "1 hour ago"},
				{ID: 2, Type: "success", Message: `New course "Advanced LLM Fine-tuning" published`, Time: "3 hours ago"},
				{ID: 3, Type: "info", Message: "Weekly analytics report is ready", Time: "5 hours ago"},
			},
		},
		analytics: admin.Analytics{
			Stats: []admin.Stat{
				{Label: "Daily Active Users", Value: "3,847", Change: "+12.3%", Up: true},
				{Label: "Avg. Session Duration", Value: "24m 32s", Change: "+5.2%", Up: true},
				{Label: "Course Completion Rate", Value: "68.4%", Change: "+3.1%", Up: true},
				{Label: "Conversion Rate", Value: "4.2%", Change: "-0.8%", Up: false},
			},
			Charts: map[string][]admin.Chart{
				admin.AnalyticsOverview: {
					chart("Signups vs Active Users",
						series("Signups", weekdays, 45, 52, 48, 61, 55, 38, 42),
						series("Active", weekdays, 38, 44, 41, 52, 48, 32, 36),
					),
					chart("Device Distribution", series("Share %", []string{"Desktop", "Mobile", "Tablet"}, 58, 32, 10)),
					chart("Time Spent per Session", series("Users",
						[]string{"0-5 min", "5-15 min", "15-30 min", "30-60 min", "60+ min"},
						450, 890, 1200, 850, 420)),
				},
				admin.AnalyticsLearning: {
					chart("Lesson Drop-off Analysis",
						series("Started", lessons, 1000, 980, 890, 720, 580, 420, 380, 350),
						series("Completed", lessons, 980, 890, 720, 580, 420, 380, 350, 320),
					),
					chart("Course Performance Heatmap", series("Completion %", courses, 68, 72, 55, 48)),
				},
				admin.AnalyticsGrowth: {
					chart("Cohort Retention Analysis",
						series("Week 1", cohorts, 100, 100, 100, 100, 100),
						series("Week 2", cohorts, 85, 82, 88, 90, 87),
						series("Week 3", cohorts, 72, 68, 75, 80, 78),
						series("Week 4", cohorts, 65, 58, 70, 75, 72),
					),
					chart("Conversion Funnel", series("Count",
						[]string{"Website Visitors", "Signups", "Course Starters", "Course Completers", "Certificate Earners"},
						45200, 2847, 1842, 847, 584)),
					chart("Revenue by Source", series("Revenue",
						[]string{"Direct", "Organic Search", "Social Media", "Referrals"},
						18400, 7200, 4200, 2600)),
				},
				admin.AnalyticsAI: {
					chart("AI Feature Usage", series("Usage %",
						[]string{"Prompts", "Code Gen", "Image Gen", "Chat", "Analysis"},
						85, 72, 58, 91, 64)),
					chart("Prompt Success Rate", series("Success %",
						[]string{"Code Generation", "Text Summarization", "Image Generation", "Data Analysis", "Translation"},
						87, 94, 78, 82, 96)),
				},
			},
		},
		announcements: []admin.Announcement{
			{ID: 1, Title: "New Course: Advanced LLM Fine-tuning", Content: "We are excited to announce our newest course on fine-tuning large language models. Enroll now!", Audience: "all", Status: "sent", SentAt: "2025-01-15 09:30", Recipients: 50247, OpenRate: 34.2},
			{ID: 2, Title: "Platform Maintenance Scheduled", Content: "We will be performing scheduled maintenance on Jan 20, 2025 from 2-4 AM UTC.", Audience: "all", Status: "scheduled", ScheduledFor: "2025-01-19 18:00", Recipients: 50247},
			{ID: 3, Title: "Complete Your AI Fundamentals Course", Content: "You are 80% through the course. Keep going to earn your certificate!", Audience: "course", TargetCourse: "AI Fundamentals", Status: "sent", SentAt: "2025-01-14 14:00", Recipients: 1247, OpenRate: 52.8},
			{ID: 4, Title: "Weekly Learning Tips", Content: "Here are this week top tips for maximizing your AI learning journey.", Audience: "all", Status: "draft"},
		},
		notifications: []admin.NotificationEvent{
			{ID: 1, User: "Sarah Chen", Action: "opened", Announcement: "New Course: Advanced LLM Fine-tuning", Time: "2 min ago"},
			{ID: 2, User: "Marcus Johnson", Action: "clicked", Announcement: "New Course: Advanced LLM Fine-tuning", Time: "5 min ago"},
			{ID: 3, User: "Elena Rodriguez", Action: "opened", Announcement: "Complete Your AI Fundamentals Course", Time: "12 min ago"},
			{ID: 4, User: "David Kim", Action: "dismissed", Announcement: "Platform Maintenance Scheduled", Time: "18 min ago"},
			{ID: 5, User: "Priya Patel", Action: "opened", Announcement: "New Course: Advanced LLM Fine-tuning", Time: "25 min ago"},
		},
		templates: []admin.NotificationTemplate{
			{Name: "Welcome Email", Channel: "Email", LastUsed: "2 days ago"},
			{Name: "Course Completion", Channel: "In-app + Email", LastUsed: "1 week ago"},
			{Name: "Weekly Digest", Channel: "Email", LastUsed: "3 days ago"},
			{Name: "Re-engagement", Channel: "Email", LastUsed: "2 weeks ago"},
			{Name: "New Course Alert", Channel: "In-app", LastUsed: "5 days ago"},
			{Name: "Certificate Earned", Channel: "Email", LastUsed: "1 day ago"},
		},
		roles: []admin.Role{
			{ID: 1, Name: "Super Admin", Description: "Full access to all platform features and settings", Users: 2,
				Permissions: permissions(T, T, T, T, T, T, T, T, T, T, T, T, T, T, T, T, T)},
			{ID: 2, Name: "Content Admin", Description: "Manage courses, lessons, and content", Users: 5,
				Permissions: permissions(T, F, F, T, T, T, T, T, T, T, F, T, T, F, F, F, F)},
			{ID: 3, Name: "Instructor", Description: "Create and manage their own courses", Users: 12,
				Permissions: permissions(T, F, F, T, T, F, T, T, F, T, F, F, T, F, F, F, F)},
			{ID: 4, Name: "Support", Description: "Help users and view basic information", Users: 8,
				Permissions: permissions(T, T, F, T, F, F, T, F, F, F, F, F, T, F, F, F, F)},
			{ID: 5, Name: "Analyst", Description: "View analytics and generate reports", Users: 3,
				Permissions: permissions(T, F, F, T, F, F, T, F, F, T, F, T, T, F, F, F, F)},
		},
		team: []admin.TeamMember{
			{ID: 1, Name: "Alex Johnson", Email: "alex@masterly.ai", Role: "Super Admin", LastActive: "2 min ago"},
			{ID: 2, Name: "Sarah Chen", Email: "sarah@masterly.ai", Role: "Content Admin", LastActive: "1 hour ago"},
			{ID: 3, Name: "Marcus Williams", Email: "marcus@masterly.ai", Role: "Instructor", LastActive: "3 hours ago"},
			{ID: 4, Name: "Emily Davis", Email: "emily@masterly.ai", Role: "Support", LastActive: "5 min ago"},
			{ID: 5, Name: "Michael Brown", Email: "michael@masterly.ai", Role: "Analyst", LastActive: "1 day ago"},
		},
		settings: admin.PlatformSettings{
			PlatformName:     "Masterly AI",
			Tagline:          "Learn AI. Build Real Projects.",
			PrimaryColor:     "#FF4D2E",
			SecondaryColor:   "#2F45FF",
			Language:         admin.Languages[0],
			Timezone:         admin.Timezones[0],
			FromName:         "Masterly AI",
			FromEmail:        "noreply@masterly.ai",
			ReplyToEmail:     "support@masterly.ai",
			CertificateTitle: "Certificate of Completion",
			IssuerName:       "Masterly AI",
			Features: []admin.Toggle{
				{Key: "registration", Label: "Enable user registration", Enabled: true},
				{Key: "reviews", Label: "Enable course reviews", Enabled: true},
				{Key: "community", Label: "Enable community features", Enabled: true},
				{Key: "certificates", Label: "Enable certificates", Enabled: true},
				{Key: "maintenance", Label: "Maintenance mode", Enabled: false},
			},
			Verification: []admin.Toggle{
				{Key: "verification", Label: "Enable certificate verification", Enabled: true},
				{Key: "show_id", Label: "Show certificate ID", Enabled: true},
				{Key: "sharing", Label: "Allow social sharing", Enabled: true},
			},
		},
	}
}
