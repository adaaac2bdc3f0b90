package library

import (
	"fmt"
	"strings"

	"github.com/justcodeworks/go-pagebuilder/internal/markdown"
)

var fragmentMarkdown = markdown.NewParser()

// ArchetypeFor maps a freeform section name to a rendering archetype using
// case-insensitive substring matching. Precedence is fixed and first match
// wins; anything unrecognised falls through to the generic archetype, so the
// dispatcher is total over every input string.
func ArchetypeFor(name string) string {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "hero"):
		return ArchetypeHero
	case strings.Contains(lower, "service"):
		return ArchetypeServices
	case strings.Contains(lower, "about"):
		return ArchetypeAbout
	case strings.Contains(lower, "pricing"):
		return ArchetypePricing
	case strings.Contains(lower, "footer"):
		return ArchetypeFooter
	case strings.Contains(lower, "featured"):
		return ArchetypeFeatured
	default:
		return ArchetypeGeneric
	}
}

// Render produces the deterministic structured fragment for a section name.
// Every archetype yields fixed copy; only the generic archetype is
// parameterized by the input, echoing the name back, so no input string
// produces an empty result.
func Render(name string) Fragment {
	var fragment Fragment
	switch ArchetypeFor(name) {
	case ArchetypeHero:
		fragment = heroFragment(name)
	case ArchetypeServices:
		fragment = servicesFragment(name)
	case ArchetypeAbout:
		fragment = aboutFragment(name)
	case ArchetypePricing:
		fragment = pricingFragment(name)
	case ArchetypeFooter:
		fragment = footerFragment(name)
	case ArchetypeFeatured:
		fragment = featuredFragment(name)
	default:
		fragment = genericFragment(name)
	}

	if html, err := fragmentMarkdown.ToHTML(fragment.Body); err == nil {
		fragment.BodyHTML = html
	} else {
		fragment.BodyHTML = fragment.Body
	}
	return fragment
}

// RenderItems dispatches a pre-sorted item sequence into fragments.
func RenderItems(items []*Item) []Fragment {
	out := make([]Fragment, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, Render(item.Name))
	}
	return out
}

func heroFragment(name string) Fragment {
	return Fragment{
		Archetype:  ArchetypeHero,
		Name:       name,
		Heading:    "Build Your Dream Website Today",
		Subheading: "Professional, fast, and beautiful websites that help your business grow.",
		Body:       "No coding required. Upload your design and we build it for you.",
	}
}

func servicesFragment(name string) Fragment {
	return Fragment{
		Archetype:  ArchetypeServices,
		Name:       name,
		Heading:    "Everything You Need to Succeed Online",
		Subheading: "Our comprehensive platform provides all the tools and services to build, manage, and grow your business online.",
		Cards: []Card{
			{Icon: "design", Title: "Modern Web Design", Description: "Sleek, mobile-friendly sites built to impress customers and convert visitors."},
			{Icon: "seo", Title: "SEO & Google Tools", Description: "Get found faster with built-in SEO and Google Business integration."},
			{Icon: "ai", Title: "AI Assistance", Description: "Let AI help you write content, suggest services, and manage your website."},
			{Icon: "hosting", Title: "Secure Hosting", Description: "Reliable, fast, and safe hosting for peace of mind."},
			{Icon: "domain", Title: "Free Domain & Email", Description: "One-year free domain registration and a professional email address."},
			{Icon: "payments", Title: "POS & Payment Systems", Description: "Accept payments in store, online, or on the go."},
			{Icon: "language", Title: "Multi-Language Support", Description: "Your site can be built in any EU language."},
			{Icon: "dashboard", Title: "Easy Admin Dashboard", Description: "Edit your website, request prints, or view stats from one simple dashboard."},
		},
	}
}

func aboutFragment(name string) Fragment {
	return Fragment{
		Archetype: ArchetypeAbout,
		Name:      name,
		Heading:   "About Our Story",
		Body: "We started with a simple mission: make beautiful, professional websites accessible to everyone.\n\n" +
			"Today we have helped thousands of businesses establish their online presence with stunning, fast-loading websites that convert visitors into customers.",
		Cards: []Card{
			{Title: "5,000+", Description: "Websites Built"},
			{Title: "99.9%", Description: "Uptime Guarantee"},
		},
	}
}

func pricingFragment(name string) Fragment {
	return Fragment{
		Archetype:  ArchetypePricing,
		Name:       name,
		Heading:    "Simple, Transparent Pricing",
		Subheading: "Choose the perfect plan for your business. All plans include hosting, domain, and 24/7 support.",
		Cards: []Card{
			{Title: "Starter", Price: "$29", Description: "per month", Features: []string{"5 Pages", "Free Domain", "SSL Certificate"}},
			{Title: "Professional", Price: "$59", Description: "per month", Features: []string{"15 Pages", "Free Domain & Email", "E-commerce Ready", "Advanced SEO"}, Highlighted: true},
			{Title: "Enterprise", Price: "$129", Description: "per month", Features: []string{"Unlimited Pages", "Priority Support", "Custom Integrations", "Advanced Analytics"}},
		},
	}
}

func footerFragment(name string) Fragment {
	return Fragment{
		Archetype: ArchetypeFooter,
		Name:      name,
		Heading:   "JustCodeWorks",
		Body: "Building amazing websites that help your business grow. Professional, fast, and beautiful.\n\n" +
			"Email: hello@justcodeworks.com\nPhone: +1 (555) 123-4567",
		Cards: []Card{
			{Title: "Services", Description: "Web Design, E-commerce, SEO Services, Hosting, Maintenance"},
		},
	}
}

func featuredFragment(name string) Fragment {
	return Fragment{
		Archetype:  ArchetypeFeatured,
		Name:       name,
		Heading:    "Featured Solutions",
		Subheading: "Discover our most popular tools and services that help businesses thrive online.",
		Cards: []Card{
			{Icon: "speed", Title: "Lightning Fast", Description: "Optimized for speed with advanced caching and CDN integration."},
			{Icon: "security", Title: "Bank-Level Security", Description: "SSL encryption, DDoS protection, and automated security updates."},
			{Icon: "analytics", Title: "Real-Time Analytics", Description: "Track visitors, conversions, and performance with detailed reporting."},
		},
	}
}

func genericFragment(name string) Fragment {
	return Fragment{
		Archetype: ArchetypeGeneric,
		Name:      name,
		Heading:   Humanize(name),
		Body:      fmt.Sprintf("This section was generated from the uploaded component %q.", name),
	}
}

// Humanize turns a freeform component name into display copy: separators
// become spaces and each word is title-cased.
func Humanize(name string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	words := strings.Fields(replaced)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
