package repository

import "vyoma/domain"

// Seed catalog shown on the portal until the placement cell manages listings
// through the database directly.

func defaultOpportunities() []domain.Opportunity {
	return []domain.Opportunity{
		{ID: 1, JobTitle: "Software Engineer Intern", CompanyName: "Tech Innovations Inc.", CompanyLogo: "https://via.placeholder.com/60?text=Tech", Tags: []string{"Full-time", "Paid", "Remote"}},
		{ID: 2, JobTitle: "Frontend Developer Intern", CompanyName: "Digital Solutions Ltd.", CompanyLogo: "https://via.placeholder.com/60?text=Digital", Tags: []string{"Full-time", "Paid", "On-site"}},
		{ID: 3, JobTitle: "Data Analyst Intern", CompanyName: "Analytics Corp", CompanyLogo: "https://via.placeholder.com/60?text=Analytics", Tags: []string{"Part-time", "Paid", "Remote"}},
		{ID: 4, JobTitle: "Backend Developer Intern", CompanyName: "Cloud Systems", CompanyLogo: "https://via.placeholder.com/60?text=Cloud", Tags: []string{"Full-time", "Paid", "Hybrid"}},
		{ID: 5, JobTitle: "UX/UI Designer Intern", CompanyName: "Creative Studio", CompanyLogo: "https://via.placeholder.com/60?text=Creative", Tags: []string{"Full-time", "Paid", "On-site"}},
		{ID: 6, JobTitle: "DevOps Engineer Intern", CompanyName: "Infrastructure Pro", CompanyLogo: "https://via.placeholder.com/60?text=Infra", Tags: []string{"Full-time", "Paid", "Remote"}},
	}
}

func defaultCompanies() []domain.Company {
	return []domain.Company{
		{ID: 1, Name: "Tech Innovations Inc.", Logo: "https://via.placeholder.com/80?text=TechInov", Industry: "Software", Description: "Leading provider of cloud infrastructure and AI solutions for enterprises worldwide.", IsHiring: true, AlumniCount: 24, Location: "San Francisco, CA"},
		{ID: 2, Name: "Digital Solutions Ltd.", Logo: "https://via.placeholder.com/80?text=Digital", Industry: "FinTech", Description: "Revolutionizing financial technology with innovative digital payment platforms.", IsHiring: true, AlumniCount: 18, Location: "New York, NY"},
		{ID: 3, Name: "Analytics Corp", Logo: "https://via.placeholder.com/80?text=Analytics", Industry: "Data Science", Description: "Advanced data analytics and business intelligence solutions for global enterprises.", IsHiring: false, AlumniCount: 12, Location: "Boston, MA"},
		{ID: 4, Name: "Cloud Systems", Logo: "https://via.placeholder.com/80?text=Cloud", Industry: "Cloud Computing", Description: "Cutting-edge cloud infrastructure and DevOps services for startups and enterprises.", IsHiring: true, AlumniCount: 31, Location: "Seattle, WA"},
		{ID: 5, Name: "Creative Studio", Logo: "https://via.placeholder.com/80?text=Creative", Industry: "Design & UX", Description: "Premium design studio creating world-class digital experiences and branding solutions.", IsHiring: true, AlumniCount: 15, Location: "Los Angeles, CA"},
		{ID: 6, Name: "Infrastructure Pro", Logo: "https://via.placeholder.com/80?text=Infra", Industry: "DevOps", Description: "Enterprise infrastructure automation and monitoring for mission-critical systems.", IsHiring: false, AlumniCount: 22, Location: "Chicago, IL"},
	}
}

func defaultPlacements() []domain.Placement {
	return []domain.Placement{
		{ID: 1, StudentName: "Raj Kumar", StudentPhoto: "https://via.placeholder.com/150?text=Raj", Company: "Google", Role: "Software Engineer"},
		{ID: 2, StudentName: "Priya Singh", StudentPhoto: "https://via.placeholder.com/150?text=Priya", Company: "Microsoft", Role: "Product Manager"},
		{ID: 3, StudentName: "Arjun Patel", StudentPhoto: "https://via.placeholder.com/150?text=Arjun", Company: "Amazon", Role: "Cloud Architect"},
		{ID: 4, StudentName: "Anjali Sharma", StudentPhoto: "https://via.placeholder.com/150?text=Anjali", Company: "Apple", Role: "Design Lead"},
	}
}
