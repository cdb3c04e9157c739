package mockdb

import "github.com/trezcool/masterly/core/course"

// outline is a public module listing; modules() opens the first `free` lessons of a course to visitors.
type outline struct {
	title   string
	lessons [][2]string // title, duration
}

func modules(courseID, free int, outlines ...outline) []course.Module {
	mods := make([]course.Module, 0, len(outlines))
	n := 0
	for i, o := range outlines {
		m := course.Module{ID: courseID*10 + i + 1, Title: o.title}
		for j, l := range o.lessons {
			m.Lessons = append(m.Lessons, course.Lesson{
				ID:       (courseID*10+i+1)*100 + j + 1,
				Title:    l[0],
				Duration: l[1],
				Free:     n < free,
				Type:     course.LessonVideo,
				Status:   course.StatusPublished,
			})
			n++
		}
		mods = append(mods, m)
	}
	return mods
}

func seedCourses() []course.Course {
	return []course.Course{
		{
			ID:              1,
			Slug:            "ai-fundamentals",
			Title:           "AI Fundamentals",
			Description:     "Master the basics of artificial intelligence and machine learning. Perfect for beginners looking to understand AI concepts and applications.",
			LongDescription: "This comprehensive course takes you from zero to hero in AI fundamentals. You will learn the core concepts behind machine learning, neural networks, and deep learning. By the end of this course, you will be able to build and deploy your own AI models.",
			Image:           "/images/course_ai_fundamentals.jpg",
			Category:        "Core",
			Level:           course.LevelBeginner,
			Status:          course.StatusPublished,
			Duration:        "4 weeks",
			Lessons:         24,
			Students:        12500,
			Enrolled:        1247,
			Rating:          4.9,
			Reviews:         2847,
			CompletionRate:  68,
			Revenue:         28400,
			LastUpdated:     "2025-01-10",
			Outcomes: []string{
				"Understand AI/ML core concepts and terminology",
				"Build your first neural network from scratch",
				"Deploy a simple AI model to production",
				"Evaluate and improve model performance",
				"Work with real-world datasets",
				"Understand ethical considerations in AI",
			},
			Tools: []string{"Python", "TensorFlow", "Jupyter", "Google Colab", "Scikit-learn"},
			Modules: modules(1, 2,
				outline{"Week 1: Introduction to AI", [][2]string{
					{"What is Artificial Intelligence?", "15 min"},
					{"History and Evolution of AI", "20 min"},
					{"Types of AI: Narrow vs General", "18 min"},
					{"Setting Up Your Environment", "25 min"},
					{"Your First AI Program", "30 min"},
				}},
				outline{"Week 2: Machine Learning Basics", [][2]string{
					{"Supervised vs Unsupervised Learning", "22 min"},
					{"Classification and Regression", "28 min"},
					{"Training and Testing Data", "20 min"},
					{"Model Evaluation Metrics", "25 min"},
					{"Hands-on: Build a Classifier", "45 min"},
				}},
				outline{"Week 3: Neural Networks", [][2]string{
					{"Introduction to Neural Networks", "25 min"},
					{"Perceptrons and Activation Functions", "30 min"},
					{"Backpropagation Explained", "35 min"},
					{"Building Your First Neural Network", "50 min"},
					{"Project: Image Classifier", "60 min"},
				}},
				outline{"Week 4: Deployment & Ethics", [][2]string{
					{"Model Deployment Strategies", "28 min"},
					{"Creating an API for Your Model", "40 min"},
					{"AI Ethics and Bias", "35 min"},
					{"Responsible AI Development", "30 min"},
					{"Final Project: Complete AI Application", "90 min"},
				}},
			),
			Projects: []course.Project{
				{Title: "Spam Email Classifier", Description: "Build a model that can distinguish between spam and legitimate emails.", Difficulty: "Beginner"},
				{Title: "Handwritten Digit Recognition", Description: "Create a neural network that recognizes handwritten digits.", Difficulty: "Intermediate"},
				{Title: "Sentiment Analysis Tool", Description: "Develop a tool that analyzes the sentiment of text data.", Difficulty: "Intermediate"},
			},
		},
		{
			ID:              2,
			Slug:            "prompt-engineering",
			Title:           "Prompt Engineering",
			Description:     "Learn to craft powerful prompts that get the best results from AI language models.",
			LongDescription: "Prompt engineering is the key to unlocking the full potential of AI language models. In this course, you will master the art of crafting prompts that produce accurate, relevant, and useful outputs.",
			Image:           "/images/course_prompt_engineering.jpg",
			Category:        "Skills",
			Level:           course.LevelIntermediate,
			Status:          course.StatusPublished,
			Duration:        "3 weeks",
			Lessons:         18,
			Students:        8900,
			Enrolled:        892,
			Rating:          4.8,
			Reviews:         1956,
			CompletionRate:  72,
			Revenue:         19500,
			LastUpdated:     "2025-01-08",
			Outcomes: []string{
				"Write effective prompts for any AI model",
				"Use chain-of-thought prompting techniques",
				"Build reusable prompt templates",
				"Optimize prompts for specific use cases",
				"Understand model limitations and biases",
				"Create multi-step AI workflows",
			},
			Tools: []string{"ChatGPT", "Claude", "Midjourney", "DALL-E", "OpenAI API"},
			Modules: modules(2, 2,
				outline{"Week 1: Prompt Foundations", [][2]string{
					{"What is Prompt Engineering?", "15 min"},
					{"Anatomy of a Great Prompt", "20 min"},
					{"Context and Constraints", "18 min"},
					{"Role-Based Prompting", "22 min"},
				}},
				outline{"Week 2: Advanced Techniques", [][2]string{
					{"Chain-of-Thought Prompting", "25 min"},
					{"Few-Shot Learning", "28 min"},
					{"Zero-Shot Capabilities", "20 min"},
					{"Prompt Chaining", "30 min"},
				}},
				outline{"Week 3: Real-World Applications", [][2]string{
					{"Content Generation Workflows", "35 min"},
					{"Code Assistant Prompts", "40 min"},
					{"Data Analysis with AI", "35 min"},
					{"Building a Prompt Library", "30 min"},
				}},
			),
			Projects: []course.Project{
				{Title: "Customer Support Bot", Description: "Create a prompt-based customer support assistant.", Difficulty: "Intermediate"},
				{Title: "Content Calendar Generator", Description: "Build a tool that generates monthly content calendars.", Difficulty: "Advanced"},
			},
		},
		{
			ID:              3,
			Slug:            "ai-for-freelancers",
			Title:           "AI for Freelancers",
			Description:     "Supercharge your freelance career with AI tools.",
			LongDescription: "Transform your freelance business with AI automation. Learn to use cutting-edge AI tools to work faster, deliver better results, and scale your income.",
			Image:           "/images/course_freelancers.jpg",
			Category:        "Career",
			Level:           course.LevelAll,
			Status:          course.StatusPublished,
			Duration:        "5 weeks",
			Lessons:         30,
			Students:        6700,
			Enrolled:        654,
			Rating:          4.9,
			Reviews:         1423,
			CompletionRate:  55,
			Revenue:         15200,
			LastUpdated:     "2025-01-05",
			Outcomes: []string{
				"Automate repetitive freelance tasks",
				"Create AI-powered content at scale",
				"Build client onboarding workflows",
				"Scale your freelance business",
				"Increase your hourly rate",
				"Find and win more clients",
			},
			Tools: []string{"Make", "Zapier", "Notion AI", "Copy.ai", "Grammarly"},
			Modules: modules(3, 2,
				outline{"Week 1: AI-Powered Workflow", [][2]string{
					{"Introduction to AI for Freelancers", "15 min"},
					{"Identifying Automation Opportunities", "25 min"},
					{"Setting Up Your AI Toolkit", "30 min"},
				}},
				outline{"Week 2-3: Content Creation", [][2]string{
					{"AI Writing Assistants", "35 min"},
					{"Image Generation for Clients", "40 min"},
					{"Video and Audio Tools", "35 min"},
				}},
				outline{"Week 4-5: Business Growth", [][2]string{
					{"Client Acquisition with AI", "30 min"},
					{"Building Productized Services", "45 min"},
					{"Scaling Your Freelance Business", "40 min"},
				}},
			),
			Projects: []course.Project{
				{Title: "Automated Client Onboarding", Description: "Build a complete onboarding system using AI tools.", Difficulty: "Intermediate"},
				{Title: "Content Agency Workflow", Description: "Create a scalable content production pipeline.", Difficulty: "Advanced"},
			},
		},
		{
			ID:              4,
			Slug:            "ai-for-business",
			Title:           "AI for Business & Automation",
			Description:     "Transform your business operations with AI automation.",
			LongDescription: "Learn to implement AI solutions that drive real business results. From customer service automation to data analysis, this course covers enterprise-grade AI implementation.",
			Image:           "/images/course_business.jpg",
			Category:        "Business",
			Level:           course.LevelAdvanced,
			Status:          course.StatusDraft,
			Duration:        "6 weeks",
			Lessons:         36,
			Students:        4200,
			Rating:          4.7,
			Reviews:         892,
			LastUpdated:     "2025-01-12",
			Outcomes: []string{
				"Design enterprise AI automation workflows",
				"Implement AI-powered customer support",
				"Build scalable data pipelines",
				"Measure ROI on AI investments",
				"Lead AI transformation initiatives",
				"Integrate AI with existing systems",
			},
			Tools: []string{"OpenAI API", "LangChain", "Pinecone", "Stripe", "AWS"},
			Modules: modules(4, 2,
				outline{"Week 1-2: AI Strategy", [][2]string{
					{"AI Transformation Framework", "30 min"},
					{"Identifying High-Impact Use Cases", "35 min"},
					{"Building the Business Case", "40 min"},
				}},
				outline{"Week 3-4: Implementation", [][2]string{
					{"AI Architecture Patterns", "45 min"},
					{"Building Production Systems", "50 min"},
					{"Security and Compliance", "40 min"},
				}},
				outline{"Week 5-6: Scale & Optimize", [][2]string{
					{"Monitoring and Maintenance", "35 min"},
					{"Continuous Improvement", "40 min"},
					{"Measuring Business Impact", "35 min"},
				}},
			),
			Projects: []course.Project{
				{Title: "Customer Support Automation", Description: "Build an AI-powered support system that handles 80% of inquiries.", Difficulty: "Advanced"},
				{Title: "Sales Pipeline Optimizer", Description: "Create an AI system that prioritizes and nurtures leads.", Difficulty: "Expert"},
			},
		},
		{
			ID:          5,
			Title:       "Advanced LLM Fine-tuning",
			Description: "Deep dive into fine-tuning large language models",
			Image:       "/images/build_workspace.jpg",
			Category:    "Advanced",
			Level:       course.LevelExpert,
			Status:      course.StatusReview,
			Duration:    "8 weeks",
			Lessons:     48,
			LastUpdated: "2025-01-11",
		},
	}
}

func seedCourseContent() map[int][]course.Module {
	lesson := func(id int, title, typ, duration, status string, views int) course.Lesson {
		return course.Lesson{ID: id, Title: title, Type: typ, Duration: duration, Status: status, Views: views}
	}
	const (
		video, text, code = course.LessonVideo, course.LessonText, course.LessonCode
		pub, draft, rev   = course.StatusPublished, course.StatusDraft, course.StatusReview
	)
	return map[int][]course.Module{
		1: {
			{ID: 1, Title: "Week 1: Introduction to AI", Lessons: []course.Lesson{
				lesson(101, "What is Artificial Intelligence?", video, "15 min", pub, 2847),
				lesson(102, "History and Evolution of AI", video, "20 min", pub, 2654),
				lesson(103, "Types of AI: Narrow vs General", video, "18 min", pub, 2432),
				lesson(104, "Setting Up Your Environment", code, "25 min", pub, 2198),
				lesson(105, "Your First AI Program", code, "30 min", draft, 0),
			}},
			{ID: 2, Title: "Week 2: Machine Learning Basics", Lessons: []course.Lesson{
				lesson(201, "Supervised vs Unsupervised Learning", video, "22 min", pub, 2156),
				lesson(202, "Classification and Regression", video, "28 min", pub, 1987),
				lesson(203, "Training and Testing Data", video, "20 min", pub, 1876),
				lesson(204, "Model Evaluation Metrics", text, "25 min", pub, 1654),
				lesson(205, "Hands-on: Build a Classifier", code, "45 min", pub, 1432),
			}},
			{ID: 3, Title: "Week 3: Neural Networks", Lessons: []course.Lesson{
				lesson(301, "Introduction to Neural Networks", video, "25 min", pub, 1876),
				lesson(302, "Perceptrons and Activation Functions", video, "30 min", pub, 1654),
				lesson(303, "Backpropagation Explained", video, "35 min", rev, 0),
				lesson(304, "Building Your First Neural Network", code, "50 min", draft, 0),
				lesson(305, "Project: Image Classifier", code, "60 min", draft, 0),
			}},
			{ID: 4, Title: "Week 4: Deployment & Ethics", Lessons: []course.Lesson{
				lesson(401, "Model Deployment Strategies", video, "28 min", draft, 0),
				lesson(402, "Creating an API for Your Model", code, "40 min", draft, 0),
				lesson(403, "AI Ethics and Bias", video, "35 min", draft, 0),
				lesson(404, "Responsible AI Development", text, "30 min", draft, 0),
				lesson(405, "Final Project: Complete AI Application", code, "90 min", draft, 0),
			}},
		},
	}
}

func seedVersions() map[int][]course.Version {
	return map[int][]course.Version{
		1: {
			{Version: "1.3", Date: "Jan 12, 2025", Author: "Admin", Changes: "Updated code examples"},
			{Version: "1.2", Date: "Jan 8, 2025", Author: "Admin", Changes: "Fixed typos"},
			{Version: "1.1", Date: "Jan 5, 2025", Author: "Admin", Changes: "Added new section"},
			{Version: "1.0", Date: "Jan 1, 2025", Author: "Admin", Changes: "Initial release"},
		},
	}
}
