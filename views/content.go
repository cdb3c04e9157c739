package views

// Marketing copy of the public pages.

type (
	feature struct {
		Title       string
		Description string
	}

	figure struct {
		Value string
		Label string
	}

	story struct {
		Name   string
		Role   string
		Before string
		After  string
		Quote  string
	}

	careerPath struct {
		Title       string
		Description string
		Roles       []string
	}
)

var (
	learnItems = []feature{
		{Title: "Prompt Engineering", Description: "Write clear, powerful prompts for any model."},
		{Title: "AI Agents & Automation", Description: "Build workflows that save hours every week."},
		{Title: "Content & Design", Description: "Create images, copy, and prototypes with AI."},
		{Title: "Real-World Projects", Description: "Client-ready deliverables you can ship immediately."},
	}

	certificationSteps = []feature{
		{Title: "Complete the Course", Description: "Finish all lessons, quizzes, and hands-on projects in your chosen learning path."},
		{Title: "Submit Your Projects", Description: "Submit your capstone projects for review by our team of expert mentors."},
		{Title: "Pass the Assessment", Description: "Complete a final skills assessment to demonstrate your mastery of the material."},
		{Title: "Receive Your Certificate", Description: "Get your verified, shareable certificate to showcase your new skills."},
	}

	certificationFeatures = []feature{
		{Title: "LinkedIn Integration", Description: "Add your certificate directly to your LinkedIn profile with one click."},
		{Title: "Resume Ready", Description: "Download a PDF version perfect for attaching to job applications."},
		{Title: "Share Anywhere", Description: "Get a unique URL to share your achievement on any platform."},
	}

	certificationFigures = []figure{
		{Value: "50,000+", Label: "Certificates Issued"},
		{Value: "92%", Label: "Learners Report Career Growth"},
		{Value: "4.8/5", Label: "Average Rating"},
	}

	careerPaths = []careerPath{
		{
			Title:       "Get a Job",
			Description: "Land roles at top tech companies, startups, and enterprises looking for AI talent.",
			Roles:       []string{"AI Product Manager", "Prompt Engineer", "AI Specialist", "Automation Consultant"},
		},
		{
			Title:       "Freelance",
			Description: "Build a thriving freelance business helping clients implement AI solutions.",
			Roles:       []string{"AI Consultant", "Content Creator", "Workflow Automator", "AI Trainer"},
		},
		{
			Title:       "Build Products",
			Description: "Launch your own AI-powered products and services.",
			Roles:       []string{"SaaS Founder", "AI App Developer", "Course Creator", "Agency Owner"},
		},
	}

	successStories = []story{
		{
			Name: "Marcus Johnson", Role: "AI Automation Consultant", Before: "Marketing Manager", After: "$150/hr freelance rate",
			Quote: "Masterly AI gave me the skills to automate workflows for clients. I went from a 9-5 to a six-figure freelance business in 8 months.",
		},
		{
			Name: "Elena Rodriguez", Role: "AI Product Manager", Before: "Business Analyst", After: "$145K at tech startup",
			Quote: "The practical projects in the course were exactly what I needed to transition into AI product management.",
		},
		{
			Name: "David Kim", Role: "Founder, AI Tools Agency", Before: "Software Developer", After: "$20K MRR agency",
			Quote: "I learned how to build AI agents and automation systems. Now I run an agency with 12 team members.",
		},
	}

	careerFigures = []figure{
		{Value: "$125K", Label: "Average Salary Increase"},
		{Value: "85%", Label: "Learners Report New Opportunities"},
		{Value: "3x", Label: "Faster Career Growth"},
	}

	testimonials = []story{
		{Name: "Sarah Chen", Role: "AI Product Manager", Quote: "Masterly AI completely transformed my career. I went from being a business analyst to an AI Product Manager at a top tech company. The hands-on projects gave me exactly the skills I needed to succeed."},
		{Name: "Marcus Johnson", Role: "Freelance AI Consultant", Quote: "Within 6 months of completing the program, I was earning $150/hour helping businesses implement AI automation. The mentorship and community support were invaluable."},
		{Name: "Elena Rodriguez", Role: "Founder", Quote: "I started my own AI consultancy after completing the Business Automation track. Now I have a team of 8 and we are serving clients globally. This program gave me the confidence and skills to build something real."},
		{Name: "David Kim", Role: "Software Engineer", Quote: "Even as an experienced developer, I learned so much about practical AI implementation. The prompt engineering course alone has made me 10x more productive in my daily work."},
		{Name: "Priya Patel", Role: "Marketing Director", Quote: "The AI for Business course helped me automate our entire marketing workflow. We have cut costs by 40% and increased output by 3x. My CEO was amazed by the results."},
		{Name: "James Wilson", Role: "Content Creator", Quote: "As a content creator, AI tools have 10x my output. I can now produce a week worth of content in a single day. The course paid for itself in the first week."},
		{Name: "Lisa Thompson", Role: "Data Analyst", Quote: "The AI Fundamentals course gave me a solid foundation that I use every day. I have built predictive models that have saved my company millions."},
		{Name: "Ahmed Hassan", Role: "Product Designer", Quote: "Learning to use AI for design has completely changed how I work. I can iterate faster and explore more creative directions than ever before."},
	}

	testimonialFigures = []figure{
		{Value: "50,000+", Label: "Active Learners"},
		{Value: "4.9/5", Label: "Average Rating"},
		{Value: "92%", Label: "Recommend to Friends"},
		{Value: "120+", Label: "Countries"},
	}
)

// Static account data of the student settings page.

type (
	preference struct {
		Key         string
		Label       string
		Description string
		Default     bool
	}

	invoice struct {
		Date   string
		Amount string
		Status string
	}
)

var (
	notificationPreferences = []preference{
		{Key: "course", Label: "Course Updates", Description: "New lessons, assignments, and announcements", Default: true},
		{Key: "email", Label: "Email Notifications", Description: "Weekly progress reports and tips", Default: true},
		{Key: "community", Label: "Community Activity", Description: "Replies to your posts and mentions"},
		{Key: "marketing", Label: "Marketing & Promotions", Description: "Special offers and new courses"},
		{Key: "reminders", Label: "Learning Reminders", Description: "Daily reminders to keep you on track", Default: true},
	}

	invoices = []invoice{
		{Date: "Jan 15, 2025", Amount: "$29.00", Status: "Paid"},
		{Date: "Dec 15, 2024", Amount: "$29.00", Status: "Paid"},
		{Date: "Nov 15, 2024", Amount: "$29.00", Status: "Paid"},
	}
)
