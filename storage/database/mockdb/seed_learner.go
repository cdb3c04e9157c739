package mockdb

import "github.com/trezcool/masterly/core/learner"

func seedLearner() *learnerTable {
	enrollments := []learner.Enrollment{
		{
			CourseSlug:       "ai-fundamentals",
			Title:            "AI Fundamentals",
			Description:      "Master the basics of AI and machine learning",
			Image:            "/images/course_ai_fundamentals.jpg",
			Progress:         65,
			TotalLessons:     24,
			CompletedLessons: 16,
			LastAccessed:     "2 hours ago",
			Status:           learner.StatusInProgress,
		},
		{
			CourseSlug:       "prompt-engineering",
			Title:            "Prompt Engineering",
			Description:      "Learn to craft powerful prompts for AI models",
			Image:            "/images/course_prompt_engineering.jpg",
			Progress:         30,
			TotalLessons:     18,
			CompletedLessons: 5,
			LastAccessed:     "1 day ago",
			Status:           learner.StatusInProgress,
		},
		{
			CourseSlug:   "ai-for-freelancers",
			Title:        "AI for Freelancers",
			Description:  "Supercharge your freelance career with AI",
			Image:        "/images/course_freelancers.jpg",
			TotalLessons: 30,
			LastAccessed: "Not started",
			Status:       learner.StatusNotStarted,
		},
		{
			CourseSlug:     "ai-basics",
			Title:          "AI Basics Workshop",
			Description:    "Introduction to AI concepts",
			Image:          "/images/hero_certificate.jpg",
			Progress:       100,
			Status:         learner.StatusCompleted,
			CompletedDate:  "Dec 15, 2024",
			HasCertificate: true,
		},
	}

	return &learnerTable{
		home: learner.Home{
			Profile: learner.Profile{FirstName: "Alex", LastName: "Johnson", Email: "alex.johnson@example.com", Plan: "Pro"},
			Stats: []learner.Stat{
				{Label: "Courses in Progress", Value: "3"},
				{Label: "Completed Lessons", Value: "42"},
				{Label: "Certificates Earned", Value: "1"},
				{Label: "Projects Submitted", Value: "5"},
			},
			Current: learner.CurrentCourse{
				Enrollment:      enrollments[0],
				CurrentLesson:   "Building Your First Neural Network",
				CurrentLessonID: "1",
				TimeRemaining:   "2h 15m",
			},
			Recommendations: []learner.Recommendation{
				{Title: "Introduction to Neural Networks", Duration: "25 min", Course: "AI Fundamentals"},
				{Title: "Advanced Prompt Engineering", Duration: "30 min", Course: "Prompt Engineering"},
				{Title: "Building AI Workflows", Duration: "40 min", Course: "AI for Business"},
			},
			Achievements: []learner.Achievement{
				{Title: "First Steps", Description: "Completed your first lesson"},
				{Title: "Week Streak", Description: "7 days of learning"},
				{Title: "Project Master", Description: "Submitted 5 projects"},
			},
		},
		enrollments: enrollments,
		projects: []learner.Project{
			{
				ID:            1,
				Title:         "Spam Email Classifier",
				Course:        "AI Fundamentals",
				Description:   "Build a model that can distinguish between spam and legitimate emails using machine learning techniques.",
				Difficulty:    "Beginner",
				Status:        learner.StatusCompleted,
				SubmittedDate: "Jan 10, 2025",
				Grade:         "95%",
				Feedback:      "Excellent work! Your model achieved high accuracy.",
			},
			{
				ID:          2,
				Title:       "Handwritten Digit Recognition",
				Course:      "AI Fundamentals",
				Description: "Create a neural network that recognizes handwritten digits using the MNIST dataset.",
				Difficulty:  "Intermediate",
				Status:      learner.StatusInProgress,
				Deadline:    "Jan 25, 2025",
			},
			{
				ID:          3,
				Title:       "Customer Support Bot",
				Course:      "Prompt Engineering",
				Description: "Create a prompt-based customer support assistant that can handle common inquiries.",
				Difficulty:  "Intermediate",
				Status:      learner.StatusNotStarted,
				Deadline:    "Feb 5, 2025",
			},
			{
				ID:          4,
				Title:       "Content Calendar Generator",
				Course:      "Prompt Engineering",
				Description: "Build a tool that generates monthly content calendars using AI.",
				Difficulty:  "Advanced",
				Status:      learner.StatusNotStarted,
				Deadline:    "Feb 15, 2025",
			},
		},
		challenges: []learner.Challenge{
			{ID: 1, Title: "Weekly Prompt Challenge", Description: "Create the most effective prompt for summarizing long articles.", Participants: 234, DaysLeft: 3, Reward: "Badge + 100 XP"},
			{ID: 2, Title: "AI Automation Sprint", Description: "Build a workflow that automates a common business task.", Participants: 156, DaysLeft: 5, Reward: "Certificate + 200 XP"},
		},
		certificates: learner.Certificates{
			Earned: []learner.EarnedCertificate{{
				ID:            1,
				Title:         "AI Fundamentals",
				IssueDate:     "December 15, 2024",
				CertificateID: "MAI-AF-2024-001234",
				Skills:        []string{"Machine Learning", "Neural Networks", "Python", "TensorFlow"},
				Verified:      true,
			}},
			InProgress: []learner.PendingCertificate{
				{ID: 2, Title: "Prompt Engineering", Progress: 60, TotalLessons: 18, CompletedLessons: 11, EstimatedCompletion: "February 10, 2025"},
				{ID: 3, Title: "AI for Freelancers", Progress: 25, TotalLessons: 30, CompletedLessons: 7, EstimatedCompletion: "March 15, 2025"},
			},
			Locked: []learner.LockedCertificate{
				{ID: 4, Title: "AI for Business & Automation", Requirement: "Complete AI Fundamentals first"},
			},
		},
		lesson: learner.Lesson{
			ID:          "4",
			Title:       "Building Your First Neural Network",
			Duration:    "45:30",
			Description: "In this lesson, we will build a simple neural network from scratch using Python and TensorFlow. You will learn about layers, activation functions, and how to train your model on real data.",
			Course:      "AI Fundamentals",
			CourseSlug:  "ai-fundamentals",
			Module:      "Week 3: Neural Networks",
			Progress:    65,
			Transcript: []learner.TranscriptLine{
				{Time: "00:00", Text: "Welcome back! In this lesson, we are going to build our first neural network."},
				{Time: "02:15", Text: "First, let us understand what a neural network is. At its core, it is a series of algorithms that endeavors to recognize underlying relationships in a set of data."},
				{Time: "05:30", Text: "We will start by importing the necessary libraries. TensorFlow is our main framework here."},
				{Time: "10:45", Text: "Now let us define our model architecture. We will use a simple sequential model with three layers."},
				{Time: "18:20", Text: "The activation function is crucial. We will use ReLU for the hidden layers and softmax for the output."},
				{Time: "25:00", Text: "Let us compile our model. We need to specify the optimizer, loss function, and metrics."},
				{Time: "32:15", Text: "Now for the exciting part - training! We will fit our model to the training data."},
				{Time: "40:00", Text: "Finally, let us evaluate our model on the test set and see how well it performs."},
			},
			Resources: []learner.Resource{
				{Name: "Lesson Slides.pdf", Size: "2.4 MB"},
				{Name: "Code Notebook.ipynb", Size: "1.8 MB"},
				{Name: "Dataset.zip", Size: "15.2 MB"},
			},
			Outline: []learner.LessonRef{
				{ID: "1", Title: "Introduction to Neural Networks", Duration: "25 min", Completed: true},
				{ID: "2", Title: "Perceptrons and Activation Functions", Duration: "30 min", Completed: true},
				{ID: "3", Title: "Backpropagation Explained", Duration: "35 min", Completed: true},
				{ID: "4", Title: "Building Your First Neural Network", Duration: "45 min"},
				{ID: "5", Title: "Project: Image Classifier", Duration: "60 min"},
			},
			Prev: &learner.LessonRef{ID: "3", Title: "Activation Functions Explained", Duration: "35:00"},
			Next: &learner.LessonRef{ID: "5", Title: "Project: Image Classifier", Duration: "60:00"},
		},
	}
}
