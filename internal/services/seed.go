package services

import "jobseeker-backend/internal/models"

func salary(v float64) *float64 { return &v }

// seedJobs returns the curated demo catalog: 85 postings spanning IT,
// marketing, engineering, finance, healthcare and other categories, so the
// recommendation keyword sets all have something to match.
func seedJobs() []models.Job {
	return []models.Job{
		// IT & software development
		{Title: "Flutter Developer", Company: "Tech Corp", Location: "New York, NY", SalaryMin: salary(80000), SalaryMax: salary(120000), Description: "We are looking for a skilled Flutter developer to build cross-platform mobile applications.", Requirements: "3+ years experience, Dart knowledge, Flutter framework", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "Data Analyst", Company: "Data Insights", Location: "San Francisco, CA", SalaryMin: salary(70000), SalaryMax: salary(110000), Description: "Analyze business data and provide insights for decision making.", Requirements: "SQL, Python, Statistics knowledge", JobType: "Contract", Category: "IT", IsRemote: false},
		{Title: "Senior Python Developer", Company: "CodeCraft Inc", Location: "Austin, TX", SalaryMin: salary(95000), SalaryMax: salary(140000), Description: "Develop scalable backend systems using Python and Django.", Requirements: "5+ years Python, Django, REST APIs", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "Product Manager", Company: "Innovation Labs", Location: "Seattle, WA", SalaryMin: salary(100000), SalaryMax: salary(150000), Description: "Define product roadmap and work with engineering teams.", Requirements: "7+ years product management experience", JobType: "Full-time", Category: "IT", IsRemote: false},
		{Title: "UX Designer", Company: "Design Studio", Location: "Los Angeles, CA", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Create beautiful and intuitive user interfaces.", Requirements: "Portfolio, Figma, UI/UX principles", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "DevOps Engineer", Company: "Cloud Solutions", Location: "Remote", SalaryMin: salary(90000), SalaryMax: salary(130000), Description: "Manage cloud infrastructure and CI/CD pipelines.", Requirements: "AWS/Azure, Docker, Kubernetes, Terraform", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "React Developer", Company: "WebDev Co", Location: "Denver, CO", SalaryMin: salary(85000), SalaryMax: salary(115000), Description: "Build modern web applications using React and TypeScript.", Requirements: "React, JavaScript/TypeScript, Redux", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "Mobile App Tester", Company: "QA Masters", Location: "Remote", SalaryMin: salary(50000), SalaryMax: salary(70000), Description: "Test mobile applications across different devices.", Requirements: "Testing experience, attention to detail", JobType: "Contract", Category: "IT", IsRemote: true},
		{Title: "Data Scientist", Company: "AI Innovations", Location: "San Francisco, CA", SalaryMin: salary(110000), SalaryMax: salary(160000), Description: "Build machine learning models and analyze complex datasets.", Requirements: "Python, ML frameworks, Statistics PhD preferred", JobType: "Full-time", Category: "IT", IsRemote: false},
		{Title: "Backend Engineer", Company: "StartupXYZ", Location: "New York, NY", SalaryMin: salary(95000), SalaryMax: salary(135000), Description: "Design and implement scalable backend services.", Requirements: "Node.js or Python, databases, microservices", JobType: "Full-time", Category: "IT", IsRemote: false},
		{Title: "Java Developer", Company: "Enterprise Solutions", Location: "Atlanta, GA", SalaryMin: salary(90000), SalaryMax: salary(125000), Description: "Develop enterprise applications using Java and Spring.", Requirements: "Java, Spring Boot, microservices architecture", JobType: "Full-time", Category: "IT", IsRemote: false},
		{Title: "iOS Developer", Company: "Mobile First", Location: "San Jose, CA", SalaryMin: salary(95000), SalaryMax: salary(135000), Description: "Build native iOS applications using Swift.", Requirements: "Swift, iOS SDK, UIKit, SwiftUI", JobType: "Full-time", Category: "IT", IsRemote: false},
		{Title: "Full Stack Developer", Company: "Tech Startup", Location: "Remote", SalaryMin: salary(85000), SalaryMax: salary(120000), Description: "Build end-to-end web applications.", Requirements: "React, Node.js, MongoDB, REST APIs", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "AI/ML Engineer", Company: "Deep Learning Co", Location: "Boston, MA", SalaryMin: salary(120000), SalaryMax: salary(170000), Description: "Develop and deploy machine learning models.", Requirements: "TensorFlow, PyTorch, Deep Learning, Python", JobType: "Full-time", Category: "IT", IsRemote: false},
		{Title: "Cybersecurity Analyst", Company: "SecureNet", Location: "Remote", SalaryMin: salary(85000), SalaryMax: salary(115000), Description: "Monitor and protect systems from security threats.", Requirements: "Security certifications, penetration testing", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "Database Administrator", Company: "DataSafe Inc", Location: "Chicago, IL", SalaryMin: salary(75000), SalaryMax: salary(105000), Description: "Manage and optimize database systems.", Requirements: "SQL Server, PostgreSQL, performance tuning", JobType: "Full-time", Category: "IT", IsRemote: false},
		{Title: "Cloud Architect", Company: "CloudTech", Location: "Remote", SalaryMin: salary(130000), SalaryMax: salary(180000), Description: "Design cloud infrastructure and migration strategies.", Requirements: "AWS/Azure/GCP certified, 7+ years experience", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "Software Tester", Company: "QA Solutions", Location: "Austin, TX", SalaryMin: salary(55000), SalaryMax: salary(80000), Description: "Perform automated and manual testing.", Requirements: "Selenium, test automation, Agile methodology", JobType: "Full-time", Category: "IT", IsRemote: false},
		{Title: "Technical Writer", Company: "DocTech", Location: "Remote", SalaryMin: salary(60000), SalaryMax: salary(85000), Description: "Create technical documentation and user guides.", Requirements: "Technical writing, API documentation", JobType: "Full-time", Category: "IT", IsRemote: true},
		{Title: "Network Engineer", Company: "NetWorks LLC", Location: "Houston, TX", SalaryMin: salary(70000), SalaryMax: salary(100000), Description: "Design and maintain network infrastructure.", Requirements: "Cisco, networking protocols, troubleshooting", JobType: "Full-time", Category: "IT", IsRemote: false},

		// Marketing & sales
		{Title: "Marketing Manager", Company: "Marketing Pro", Location: "Remote", SalaryMin: salary(60000), SalaryMax: salary(90000), Description: "Lead our marketing team and develop strategies to grow our brand.", Requirements: "5+ years experience in digital marketing", JobType: "Full-time", Category: "Marketing", IsRemote: true},
		{Title: "Sales Representative", Company: "SalesPro Corp", Location: "Chicago, IL", SalaryMin: salary(50000), SalaryMax: salary(75000), Description: "Drive sales and build relationships with clients.", Requirements: "2+ years sales experience, excellent communication", JobType: "Full-time", Category: "Marketing", IsRemote: false},
		{Title: "Content Writer", Company: "MediaWorks", Location: "Remote", SalaryMin: salary(45000), SalaryMax: salary(65000), Description: "Create engaging content for various platforms.", Requirements: "Strong writing skills, SEO knowledge", JobType: "Part-time", Category: "Marketing", IsRemote: true},
		{Title: "Graphic Designer", Company: "Creative Agency", Location: "Miami, FL", SalaryMin: salary(55000), SalaryMax: salary(80000), Description: "Design visual content for marketing campaigns.", Requirements: "Adobe Creative Suite, portfolio required", JobType: "Full-time", Category: "Marketing", IsRemote: false},
		{Title: "SEO Specialist", Company: "Digital Growth", Location: "Remote", SalaryMin: salary(55000), SalaryMax: salary(80000), Description: "Optimize websites for search engines and drive organic traffic.", Requirements: "SEO tools, Google Analytics, content strategy", JobType: "Full-time", Category: "Marketing", IsRemote: true},
		{Title: "Social Media Manager", Company: "Brand Builders", Location: "Remote", SalaryMin: salary(50000), SalaryMax: salary(75000), Description: "Manage social media accounts and create engaging content.", Requirements: "Social media experience, content creation skills", JobType: "Full-time", Category: "Marketing", IsRemote: true},
		{Title: "Digital Marketing Specialist", Company: "AdTech Solutions", Location: "Los Angeles, CA", SalaryMin: salary(60000), SalaryMax: salary(85000), Description: "Plan and execute digital marketing campaigns.", Requirements: "Google Ads, Facebook Ads, analytics", JobType: "Full-time", Category: "Marketing", IsRemote: false},
		{Title: "Brand Manager", Company: "Consumer Goods Co", Location: "New York, NY", SalaryMin: salary(80000), SalaryMax: salary(110000), Description: "Develop and maintain brand identity.", Requirements: "Brand strategy, market research, 5+ years", JobType: "Full-time", Category: "Marketing", IsRemote: false},
		{Title: "Email Marketing Specialist", Company: "EmailPro", Location: "Remote", SalaryMin: salary(50000), SalaryMax: salary(70000), Description: "Create and manage email marketing campaigns.", Requirements: "Mailchimp, A/B testing, copywriting", JobType: "Full-time", Category: "Marketing", IsRemote: true},
		{Title: "Public Relations Manager", Company: "PR Experts", Location: "Washington DC", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Manage media relations and company reputation.", Requirements: "PR experience, media contacts, crisis management", JobType: "Full-time", Category: "Marketing", IsRemote: false},
		{Title: "Video Editor", Company: "Media Production", Location: "Remote", SalaryMin: salary(55000), SalaryMax: salary(80000), Description: "Edit video content for various platforms.", Requirements: "Adobe Premiere, Final Cut Pro, creativity", JobType: "Contract", Category: "Marketing", IsRemote: true},
		{Title: "Copywriter", Company: "Ad Agency", Location: "Chicago, IL", SalaryMin: salary(55000), SalaryMax: salary(75000), Description: "Write compelling copy for advertisements.", Requirements: "Creative writing, advertising experience", JobType: "Full-time", Category: "Marketing", IsRemote: false},
		{Title: "Marketing Analyst", Company: "Analytics Co", Location: "Remote", SalaryMin: salary(65000), SalaryMax: salary(90000), Description: "Analyze marketing data and campaign performance.", Requirements: "Data analysis, Excel, marketing metrics", JobType: "Full-time", Category: "Marketing", IsRemote: true},
		{Title: "Event Coordinator", Company: "Events Plus", Location: "Las Vegas, NV", SalaryMin: salary(45000), SalaryMax: salary(65000), Description: "Plan and execute corporate events.", Requirements: "Event planning, organization skills", JobType: "Full-time", Category: "Marketing", IsRemote: false},
		{Title: "Influencer Marketing Manager", Company: "Social Reach", Location: "Remote", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Manage influencer partnerships and campaigns.", Requirements: "Influencer marketing, negotiation skills", JobType: "Full-time", Category: "Marketing", IsRemote: true},

		// Engineering
		{Title: "Mechanical Engineer", Company: "AutoTech Inc", Location: "Detroit, MI", SalaryMin: salary(75000), SalaryMax: salary(105000), Description: "Design mechanical systems for automotive products.", Requirements: "CAD, SolidWorks, 3+ years experience", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Electrical Engineer", Company: "PowerGrid Solutions", Location: "Houston, TX", SalaryMin: salary(80000), SalaryMax: salary(110000), Description: "Design electrical systems and circuits.", Requirements: "Circuit design, MATLAB, power systems", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Civil Engineer", Company: "Construction Pros", Location: "Phoenix, AZ", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Design infrastructure and construction projects.", Requirements: "AutoCAD, structural analysis, PE license", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Chemical Engineer", Company: "ChemTech Industries", Location: "Newark, NJ", SalaryMin: salary(85000), SalaryMax: salary(115000), Description: "Develop chemical processes and products.", Requirements: "Process engineering, ChemCAD, safety protocols", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Biomedical Engineer", Company: "MedDevice Corp", Location: "Boston, MA", SalaryMin: salary(80000), SalaryMax: salary(110000), Description: "Design medical devices and equipment.", Requirements: "Medical devices, FDA regulations, CAD", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Aerospace Engineer", Company: "AeroSpace Systems", Location: "Seattle, WA", SalaryMin: salary(95000), SalaryMax: salary(135000), Description: "Design aircraft and spacecraft systems.", Requirements: "Aerodynamics, CATIA, systems engineering", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Industrial Engineer", Company: "Manufacturing Co", Location: "Cleveland, OH", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Optimize production processes and efficiency.", Requirements: "Lean manufacturing, Six Sigma, process improvement", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Quality Engineer", Company: "QualityFirst", Location: "San Diego, CA", SalaryMin: salary(75000), SalaryMax: salary(100000), Description: "Ensure product quality and compliance.", Requirements: "Quality management, ISO standards, inspection", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Process Engineer", Company: "Tech Manufacturing", Location: "Austin, TX", SalaryMin: salary(80000), SalaryMax: salary(110000), Description: "Improve manufacturing processes.", Requirements: "Process optimization, lean principles, data analysis", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Environmental Engineer", Company: "EcoSolutions", Location: "Portland, OR", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Develop solutions for environmental issues.", Requirements: "Environmental science, regulations, water treatment", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Structural Engineer", Company: "BuildRight", Location: "Miami, FL", SalaryMin: salary(85000), SalaryMax: salary(115000), Description: "Design structural systems for buildings.", Requirements: "Structural analysis, steel/concrete design, PE license", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Systems Engineer", Company: "Defense Systems", Location: "Arlington, VA", SalaryMin: salary(95000), SalaryMax: salary(130000), Description: "Design complex system architectures.", Requirements: "Systems engineering, requirements analysis, DoD clearance", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Manufacturing Engineer", Company: "Auto Parts Inc", Location: "Detroit, MI", SalaryMin: salary(75000), SalaryMax: salary(100000), Description: "Design and improve manufacturing processes.", Requirements: "Manufacturing systems, automation, CAD", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Petroleum Engineer", Company: "Energy Corp", Location: "Dallas, TX", SalaryMin: salary(90000), SalaryMax: salary(130000), Description: "Design oil and gas extraction systems.", Requirements: "Reservoir engineering, drilling operations", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Materials Engineer", Company: "Advanced Materials", Location: "Pittsburgh, PA", SalaryMin: salary(80000), SalaryMax: salary(110000), Description: "Research and develop new materials.", Requirements: "Materials science, testing, R&D experience", JobType: "Full-time", Category: "Other", IsRemote: false},

		// Finance & business
		{Title: "Financial Analyst", Company: "FinTech Solutions", Location: "Boston, MA", SalaryMin: salary(75000), SalaryMax: salary(105000), Description: "Analyze financial data and create reports.", Requirements: "Finance degree, Excel, financial modeling", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Accountant", Company: "Accounting Firm", Location: "New York, NY", SalaryMin: salary(60000), SalaryMax: salary(85000), Description: "Manage financial records and prepare reports.", Requirements: "CPA, accounting software, 3+ years", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Investment Banker", Company: "Goldman & Associates", Location: "New York, NY", SalaryMin: salary(120000), SalaryMax: salary(200000), Description: "Provide financial advisory services.", Requirements: "Finance degree, MBA preferred, deal experience", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Tax Advisor", Company: "Tax Experts", Location: "Chicago, IL", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Provide tax planning and compliance services.", Requirements: "CPA, tax law, client management", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Auditor", Company: "Audit Solutions", Location: "Atlanta, GA", SalaryMin: salary(65000), SalaryMax: salary(90000), Description: "Conduct financial audits and reviews.", Requirements: "CPA, auditing standards, analytical skills", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Business Analyst", Company: "Consulting Group", Location: "Washington DC", SalaryMin: salary(75000), SalaryMax: salary(100000), Description: "Analyze business processes and recommend improvements.", Requirements: "Business analysis, requirements gathering, Agile", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Management Consultant", Company: "Strategy Consultants", Location: "San Francisco, CA", SalaryMin: salary(100000), SalaryMax: salary(150000), Description: "Advise businesses on strategy and operations.", Requirements: "MBA, consulting experience, problem-solving", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Operations Manager", Company: "Logistics Co", Location: "Memphis, TN", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Oversee daily operations and logistics.", Requirements: "Operations management, process improvement", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Risk Analyst", Company: "Insurance Corp", Location: "Hartford, CT", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Assess and manage business risks.", Requirements: "Risk analysis, statistics, financial modeling", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Portfolio Manager", Company: "Investment Firm", Location: "New York, NY", SalaryMin: salary(110000), SalaryMax: salary(160000), Description: "Manage investment portfolios.", Requirements: "CFA, portfolio management, market analysis", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Financial Controller", Company: "Manufacturing Corp", Location: "Cleveland, OH", SalaryMin: salary(90000), SalaryMax: salary(125000), Description: "Oversee financial reporting and controls.", Requirements: "CPA, controller experience, leadership", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Budget Analyst", Company: "Government Agency", Location: "Washington DC", SalaryMin: salary(65000), SalaryMax: salary(85000), Description: "Analyze and prepare budget reports.", Requirements: "Budget analysis, Excel, government experience", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Credit Analyst", Company: "Banking Corp", Location: "Charlotte, NC", SalaryMin: salary(60000), SalaryMax: salary(80000), Description: "Evaluate creditworthiness of loan applicants.", Requirements: "Credit analysis, financial statements, banking", JobType: "Full-time", Category: "Finance", IsRemote: false},
		{Title: "Supply Chain Manager", Company: "Retail Giant", Location: "Bentonville, AR", SalaryMin: salary(85000), SalaryMax: salary(115000), Description: "Manage supply chain operations.", Requirements: "Supply chain management, logistics, ERP systems", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Compliance Officer", Company: "Financial Services", Location: "New York, NY", SalaryMin: salary(80000), SalaryMax: salary(110000), Description: "Ensure regulatory compliance.", Requirements: "Compliance knowledge, regulations, auditing", JobType: "Full-time", Category: "Finance", IsRemote: false},

		// Healthcare & sciences
		{Title: "Registered Nurse", Company: "City Hospital", Location: "Los Angeles, CA", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Provide patient care and support.", Requirements: "RN license, BSN, clinical experience", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Pharmacist", Company: "Pharmacy Chain", Location: "Phoenix, AZ", SalaryMin: salary(110000), SalaryMax: salary(140000), Description: "Dispense medications and provide consultation.", Requirements: "PharmD, state license, patient care", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Medical Laboratory Technician", Company: "LabCorp", Location: "Burlington, NC", SalaryMin: salary(45000), SalaryMax: salary(60000), Description: "Conduct laboratory tests and analysis.", Requirements: "MLT certification, lab experience", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Physical Therapist", Company: "Rehab Center", Location: "Denver, CO", SalaryMin: salary(75000), SalaryMax: salary(95000), Description: "Provide physical therapy services.", Requirements: "DPT, state license, patient care", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Research Scientist", Company: "Biotech Labs", Location: "San Diego, CA", SalaryMin: salary(85000), SalaryMax: salary(120000), Description: "Conduct scientific research and experiments.", Requirements: "PhD in life sciences, research experience", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Clinical Research Coordinator", Company: "Pharma Inc", Location: "Boston, MA", SalaryMin: salary(55000), SalaryMax: salary(75000), Description: "Coordinate clinical trials and research.", Requirements: "Clinical research, GCP, regulatory knowledge", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Medical Writer", Company: "HealthComm", Location: "Remote", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Write medical and scientific content.", Requirements: "Life sciences degree, medical writing", JobType: "Full-time", Category: "Other", IsRemote: true},
		{Title: "Radiologic Technologist", Company: "Imaging Center", Location: "Houston, TX", SalaryMin: salary(55000), SalaryMax: salary(75000), Description: "Perform diagnostic imaging procedures.", Requirements: "ARRT certification, radiology experience", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Bioinformatics Specialist", Company: "Genomics Lab", Location: "San Francisco, CA", SalaryMin: salary(90000), SalaryMax: salary(125000), Description: "Analyze biological data using computational methods.", Requirements: "Bioinformatics, Python/R, genomics", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Occupational Therapist", Company: "Healthcare Services", Location: "Seattle, WA", SalaryMin: salary(70000), SalaryMax: salary(90000), Description: "Help patients develop daily living skills.", Requirements: "OT license, patient assessment", JobType: "Full-time", Category: "Other", IsRemote: false},

		// Education & other
		{Title: "Software Training Instructor", Company: "Tech Academy", Location: "Remote", SalaryMin: salary(55000), SalaryMax: salary(80000), Description: "Teach programming courses online.", Requirements: "Software development, teaching experience", JobType: "Full-time", Category: "Other", IsRemote: true},
		{Title: "HR Manager", Company: "PeopleFirst Inc", Location: "Dallas, TX", SalaryMin: salary(70000), SalaryMax: salary(95000), Description: "Manage recruitment and employee relations.", Requirements: "HR experience, SHRM certification", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Project Manager", Company: "Construction Plus", Location: "Phoenix, AZ", SalaryMin: salary(80000), SalaryMax: salary(110000), Description: "Manage construction projects from start to finish.", Requirements: "PMP certification, 5+ years experience", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Customer Success Manager", Company: "SaaS Company", Location: "Remote", SalaryMin: salary(65000), SalaryMax: salary(90000), Description: "Ensure customer satisfaction and drive product adoption.", Requirements: "3+ years customer success experience", JobType: "Full-time", Category: "Other", IsRemote: true},
		{Title: "Legal Assistant", Company: "Law Firm", Location: "New York, NY", SalaryMin: salary(50000), SalaryMax: salary(70000), Description: "Support attorneys with legal research and documentation.", Requirements: "Paralegal certificate, legal research", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Executive Assistant", Company: "Corporate HQ", Location: "San Francisco, CA", SalaryMin: salary(60000), SalaryMax: salary(85000), Description: "Provide administrative support to executives.", Requirements: "Executive support, organization, communication", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Translator", Company: "Language Services", Location: "Remote", SalaryMin: salary(45000), SalaryMax: salary(65000), Description: "Translate documents and communications.", Requirements: "Bilingual, translation certification", JobType: "Contract", Category: "Other", IsRemote: true},
		{Title: "Urban Planner", Company: "City Planning Dept", Location: "Portland, OR", SalaryMin: salary(65000), SalaryMax: salary(90000), Description: "Plan land use and community development.", Requirements: "Urban planning degree, GIS, zoning knowledge", JobType: "Full-time", Category: "Other", IsRemote: false},
		{Title: "Real Estate Agent", Company: "Realty Group", Location: "Miami, FL", SalaryMin: salary(50000), SalaryMax: salary(100000), Description: "Help clients buy and sell properties.", Requirements: "Real estate license, sales experience", JobType: "Commission", Category: "Other", IsRemote: false},
		{Title: "Interior Designer", Company: "Design Interiors", Location: "New York, NY", SalaryMin: salary(55000), SalaryMax: salary(85000), Description: "Design interior spaces for residential and commercial clients.", Requirements: "Design degree, CAD, portfolio", JobType: "Full-time", Category: "Other", IsRemote: false},
	}
}
