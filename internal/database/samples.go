// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import "portfolio/internal/models"

var sampleProjects = []models.ProjectCreate{
	{
		Title:       "Modern Professional CV",
		Description: "Clean, minimalist design perfect for corporate professionals",
		Image:       "https://images.unsplash.com/photo-1586281380349-632531db7ed4?w=400&h=600&fit=crop",
		Category:    models.CategoryCV,
		Tags:        []string{"Professional", "Modern", "Clean"},
		IsFeatured:  true,
	},
	{
		Title:       "Creative Designer CV",
		Description: "Bold, colorful design for creative professionals",
		Image:       "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?w=400&h=600&fit=crop",
		Category:    models.CategoryCV,
		Tags:        []string{"Creative", "Bold", "Colorful"},
	},
	{
		Title:       "Executive CV Template",
		Description: "Premium design for senior executives and leadership roles",
		Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=600&fit=crop",
		Category:    models.CategoryCV,
		Tags:        []string{"Executive", "Premium", "Leadership"},
		IsFeatured:  true,
	},
	{
		Title:       "Tech Startup Brand",
		Description: "Complete brand identity for innovative tech company",
		Image:       "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=400&fit=crop",
		Category:    models.CategoryBranding,
		Tags:        []string{"Tech", "Startup", "Innovation"},
		IsFeatured:  true,
	},
	{
		Title:       "Coffee Shop Branding",
		Description: "Warm, inviting brand identity for local coffee shop",
		Image:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=400&h=400&fit=crop",
		Category:    models.CategoryBranding,
		Tags:        []string{"Coffee", "Local", "Warm"},
	},
	{
		Title:       "Fashion Brand Identity",
		Description: "Elegant and sophisticated branding for fashion label",
		Image:       "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=400&fit=crop",
		Category:    models.CategoryBranding,
		Tags:        []string{"Fashion", "Elegant", "Sophisticated"},
	},
	{
		Title:       "Instagram Post Templates",
		Description: "Cohesive social media templates for Instagram",
		Image:       "https://images.unsplash.com/photo-1611262588024-d12430b98920?w=400&h=400&fit=crop",
		Category:    models.CategorySocial,
		Tags:        []string{"Instagram", "Social", "Templates"},
		IsFeatured:  true,
	},
	{
		Title:       "LinkedIn Post Designs",
		Description: "Professional post templates for LinkedIn engagement",
		Image:       "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400&h=400&fit=crop",
		Category:    models.CategorySocial,
		Tags:        []string{"LinkedIn", "Professional", "Engagement"},
	},
	{
		Title:       "Social Media Kit",
		Description: "Complete social media design kit for businesses",
		Image:       "https://images.unsplash.com/photo-1432888622747-4eb9a8efeb07?w=400&h=400&fit=crop",
		Category:    models.CategorySocial,
		Tags:        []string{"Social Media", "Business", "Kit"},
	},
}

var sampleTestimonials = []models.TestimonialCreate{
	{
		Name:    "Sarah Johnson",
		Role:    "Marketing Director",
		Company: "TechCorp",
		Message: "Ashin's design work is exceptional. The CV template helped me land my dream job!",
		Avatar:  "https://images.unsplash.com/photo-1494790108755-2616b9de11e2?w=100&h=100&fit=crop&crop=face",
	},
	{
		Name:    "Michael Chen",
		Role:    "Startup Founder",
		Company: "InnovateLab",
		Message: "The branding identity Ashin created perfectly captures our company's vision and values.",
		Avatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
	},
	{
		Name:    "Emma Rodriguez",
		Role:    "Social Media Manager",
		Company: "Creative Agency",
		Message: "The social media templates have transformed our online presence. Highly recommended!",
		Avatar:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
	},
}
