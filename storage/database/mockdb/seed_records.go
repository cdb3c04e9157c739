package mockdb

import (
	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/core/submission"
	"github.com/trezcool/masterly/core/user"
)

func seedUsers() []user.User {
	return []user.User{
		{ID: 1, Name: "Sarah Chen", Email: "sarah.chen@example.com", Status: user.StatusActive, Plan: user.PlanPro, Progress: 78, Courses: 3, Certificates: 2, Joined: "2024-11-15", LastActive: "2 hours ago", Country: "USA"},
		{ID: 2, Name: "Marcus Johnson", Email: "marcus.j@example.com", Status: user.StatusActive, Plan: user.PlanEnterprise, Progress: 92, Courses: 5, Certificates: 3, Joined: "2024-10-22", LastActive: "5 min ago", Country: "UK"},
		{ID: 3, Name: "Elena Rodriguez", Email: "elena.r@example.com", Status: user.StatusInactive, Plan: user.PlanFree, Progress: 23, Courses: 1, Certificates: 0, Joined: "2024-12-01", LastActive: "3 days ago", Country: "Spain"},
		{ID: 4, Name: "David Kim", Email: "david.kim@example.com", Status: user.StatusActive, Plan: user.PlanPro, Progress: 65, Courses: 2, Certificates: 1, Joined: "2024-09-18", LastActive: "1 hour ago", Country: "South Korea"},
		{ID: 5, Name: "Priya Patel", Email: "priya.patel@example.com", Status: user.StatusActive, Plan: user.PlanPro, Progress: 88, Courses: 4, Certificates: 2, Joined: "2024-08-30", LastActive: "30 min ago", Country: "India"},
		{ID: 6, Name: "James Wilson", Email: "james.w@example.com", Status: user.StatusSuspended, Plan: user.PlanFree, Progress: 12, Courses: 1, Certificates: 0, Joined: "2024-12-10", LastActive: "1 week ago", Country: "Canada"},
		{ID: 7, Name: "Lisa Thompson", Email: "lisa.t@example.com", Status: user.StatusActive, Plan: user.PlanEnterprise, Progress: 95, Courses: 6, Certificates: 4, Joined: "2024-07-15", LastActive: "15 min ago", Country: "Australia"},
		{ID: 8, Name: "Ahmed Hassan", Email: "ahmed.h@example.com", Status: user.StatusActive, Plan: user.PlanPro, Progress: 71, Courses: 3, Certificates: 2, Joined: "2024-10-05", LastActive: "4 hours ago", Country: "Egypt"},
		{ID: 9, Name: "Yuki Tanaka", Email: "yuki.t@example.com", Status: user.StatusInactive, Plan: user.PlanFree, Progress: 8, Courses: 1, Certificates: 0, Joined: "2024-12-20", LastActive: "5 days ago", Country: "Japan"},
		{ID: 10, Name: "Maria Garcia", Email: "maria.g@example.com", Status: user.StatusActive, Plan: user.PlanPro, Progress: 54, Courses: 2, Certificates: 1, Joined: "2024-09-28", LastActive: "2 hours ago", Country: "Mexico"},
	}
}

func seedCertificates() []certificate.Certificate {
	return []certificate.Certificate{
		{ID: "CERT-001", User: "Sarah Chen", Email: "sarah.chen@example.com", Course: "AI Fundamentals", IssuedDate: "2025-01-15", Status: certificate.StatusActive, Grade: "95%", Verified: true},
		{ID: "CERT-002", User: "Marcus Johnson", Email: "marcus.j@example.com", Course: "AI Fundamentals", IssuedDate: "2025-01-14", Status: certificate.StatusActive, Grade: "88%", Verified: true},
		{ID: "CERT-003", User: "Elena Rodriguez", Email: "elena.r@example.com", Course: "Prompt Engineering", IssuedDate: "2025-01-12", Status: certificate.StatusActive, Grade: "92%", Verified: true},
		{ID: "CERT-004", User: "David Kim", Email: "david.kim@example.com", Course: "AI Fundamentals", IssuedDate: "2025-01-10", Status: certificate.StatusRevoked, Grade: "76%", Verified: false},
		{ID: "CERT-005", User: "Priya Patel", Email: "priya.patel@example.com", Course: "AI for Freelancers", IssuedDate: "2025-01-08", Status: certificate.StatusActive, Grade: "98%", Verified: true},
		{ID: "CERT-006", User: "James Wilson", Email: "james.w@example.com", Course: "AI Fundamentals", IssuedDate: "2025-01-05", Status: certificate.StatusPending, Grade: "Pending", Verified: false},
		{ID: "CERT-007", User: "Lisa Thompson", Email: "lisa.t@example.com", Course: "Prompt Engineering", IssuedDate: "2025-01-03", Status: certificate.StatusActive, Grade: "91%", Verified: true},
		{ID: "CERT-008", User: "Ahmed Hassan", Email: "ahmed.h@example.com", Course: "AI Fundamentals", IssuedDate: "2025-01-01", Status: certificate.StatusActive, Grade: "85%", Verified: true},
	}
}

func seedSubmissions() []submission.Submission {
	return []submission.Submission{
		{ID: 1, User: "Sarah Chen", Email: "sarah.chen@example.com", Project: "Spam Email Classifier", Course: "AI Fundamentals", Submitted: "2 hours ago", Status: submission.StatusPending},
		{ID: 2, User: "Marcus Johnson", Email: "marcus.j@example.com", Project: "Handwritten Digit Recognition", Course: "AI Fundamentals", Submitted: "5 hours ago", Status: submission.StatusReviewed, Grade: "A"},
		{ID: 3, User: "David Kim", Email: "david.kim@example.com", Project: "Customer Support Bot", Course: "Prompt Engineering", Submitted: "1 day ago", Status: submission.StatusPending},
		{ID: 4, User: "Priya Patel", Email: "priya.patel@example.com", Project: "Spam Email Classifier", Course: "AI Fundamentals", Submitted: "2 days ago", Status: submission.StatusApproved, Grade: "A+"},
		{ID: 5, User: "James Wilson", Email: "james.w@example.com", Project: "Content Calendar Generator", Course: "Prompt Engineering", Submitted: "3 days ago", Status: submission.StatusRejected, Grade: "F"},
		{ID: 6, User: "Lisa Thompson", Email: "lisa.t@example.com", Project: "Sentiment Analysis Tool", Course: "AI Fundamentals", Submitted: "3 days ago", Status: submission.StatusApproved, Grade: "A"},
		{ID: 7, User: "Ahmed Hassan", Email: "ahmed.h@example.com", Project: "Spam Email Classifier", Course: "AI Fundamentals", Submitted: "4 days ago", Status: submission.StatusPending},
		{ID: 8, User: "Yuki Tanaka", Email: "yuki.t@example.com", Project: "Image Classifier", Course: "AI Fundamentals", Submitted: "5 days ago", Status: submission.StatusReviewed, Grade: "B+"},
	}
}

func seedEvents() []audit.Event {
	return []audit.Event{
		{ID: 1, User: "Alex Johnson", Action: "Login", IP: "192.168.1.1", Location: "San Francisco, US", Device: "Chrome / MacOS", Timestamp: "2025-01-15 14:32:15", Status: audit.StatusSuccess},
		{ID: 2, User: "Sarah Chen", Action: "Course Updated", IP: "192.168.1.45", Location: "New York, US", Device: "Firefox / Windows", Timestamp: "2025-01-15 14:28:42", Status: audit.StatusSuccess},
		{ID: 3, User: "Unknown", Action: "Failed Login", IP: "203.45.67.89", Location: "Beijing, CN", Device: "Chrome / Windows", Timestamp: "2025-01-15 14:25:10", Status: audit.StatusFailed},
		{ID: 4, User: "Marcus Williams", Action: "User Deleted", IP: "192.168.1.23", Location: "London, UK", Device: "Safari / MacOS", Timestamp: "2025-01-15 14:20:33", Status: audit.StatusSuccess},
		{ID: 5, User: "Emily Davis", Action: "Settings Changed", IP: "192.168.1.67", Location: "Toronto, CA", Device: "Chrome / Windows", Timestamp: "2025-01-15 14:15:22", Status: audit.StatusSuccess},
		{ID: 6, User: "Unknown", Action: "Failed Login", IP: "185.22.67.123", Location: "Moscow, RU", Device: "Firefox / Linux", Timestamp: "2025-01-15 14:10:05", Status: audit.StatusFailed},
		{ID: 7, User: "Michael Brown", Action: "Certificate Issued", IP: "192.168.1.89", Location: "Sydney, AU", Device: "Chrome / MacOS", Timestamp: "2025-01-15 14:05:47", Status: audit.StatusSuccess},
		{ID: 8, User: "Alex Johnson", Action: "Logout", IP: "192.168.1.1", Location: "San Francisco, US", Device: "Chrome / MacOS", Timestamp: "2025-01-15 13:58:12", Status: audit.StatusSuccess},
	}
}

func seedLogins() []audit.Login {
	return []audit.Login{
		{ID: 1, User: "Alex Johnson", Email: "alex@masterly.ai", Time: "2 hours ago", IP: "192.168.1.1", Device: "Chrome on macOS", Location: "San Francisco, CA"},
		{ID: 2, User: "Sarah Chen", Email: "sarah@masterly.ai", Time: "3 hours ago", IP: "192.168.1.45", Device: "Firefox on Windows", Location: "New York, NY"},
		{ID: 3, User: "Marcus Williams", Email: "marcus@masterly.ai", Time: "5 hours ago", IP: "192.168.1.23", Device: "Safari on macOS", Location: "London, UK"},
		{ID: 4, User: "Emily Davis", Email: "emily@masterly.ai", Time: "6 hours ago", IP: "192.168.1.67", Device: "Chrome on Windows", Location: "Toronto, Canada"},
	}
}
