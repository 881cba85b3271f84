// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cruisecms/internal/models"
)

// DefaultSystemPrompt is the persona used when no style guide is selected.
const DefaultSystemPrompt = "You are a professional cruise travel writer. Write engaging, informative articles about cruise ships."

// targetWordCount is the article length requested from the model.
const targetWordCount = 1200

// BuildArticlePrompt assembles the system and user instructions for one
// article generation. The caller must have validated that ship and topic
// are present; guide may be nil.
//
// The prompt is pure string assembly with a fixed block order, so the same
// inputs always produce the same prompt.
func BuildArticlePrompt(ship *models.Ship, reviews []models.Review, topic *models.Topic, guide *models.StyleGuide) (systemPrompt, userPrompt string) {
	systemPrompt = DefaultSystemPrompt
	if guide != nil && guide.SystemPrompt != "" {
		systemPrompt = guide.SystemPrompt
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Write a comprehensive %d-word article about %q on the %s cruise ship.\n\n",
		targetWordCount, topic.Name, ship.Name)

	b.WriteString("Ship Details:\n")
	fmt.Fprintf(&b, "- Name: %s\n", ship.Name)
	fmt.Fprintf(&b, "- Cruise Line: %s\n", ship.CruiseLine)
	fmt.Fprintf(&b, "- Year Built: %s\n", intOrUnknown(ship.YearBuilt))
	fmt.Fprintf(&b, "- Capacity: %s passengers\n", intOrUnknown(ship.Capacity))
	fmt.Fprintf(&b, "- Gross Tonnage: %s\n", intOrUnknown(ship.GrossTonnage))
	if len(ship.Itineraries) > 0 {
		fmt.Fprintf(&b, "- Itineraries: %s\n", strings.Join(ship.Itineraries, ", "))
	}

	fmt.Fprintf(&b, "\nTopic: %s\n", topic.Name)
	if topic.Description != nil && *topic.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", *topic.Description)
	}

	fmt.Fprintf(&b, "\nBase your article on these %d reviews:\n", len(reviews))
	for i, review := range reviews {
		writeReviewBlock(&b, i+1, review)
	}

	if guide != nil && guide.StructureTemplate != nil && *guide.StructureTemplate != "" {
		fmt.Fprintf(&b, "\n\nArticle Structure:\n%s", *guide.StructureTemplate)
	}

	if guide != nil && guide.DosAndDonts.DosAndDonts != nil {
		dd := guide.DosAndDonts.DosAndDonts
		b.WriteString("\n\nStyle Guidelines:\nDO:\n")
		for _, item := range dd.Dos {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\nDON'T:\n")
		for _, item := range dd.Donts {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}

	b.WriteString("\n\nPlease write the article now. Include a compelling title at the beginning.")

	return systemPrompt, b.String()
}

// writeReviewBlock formats a single review as a labeled block.
func writeReviewBlock(b *strings.Builder, idx int, review models.Review) {
	fmt.Fprintf(b, "\nReview %d:\n", idx)
	fmt.Fprintf(b, "- Rating: %d/5\n", review.Rating)

	date := "Not specified"
	if review.CruiseDate != nil {
		date = review.CruiseDate.Format("2006-01-02")
	}
	fmt.Fprintf(b, "- Date: %s\n", date)

	reviewer := "Anonymous"
	if review.ReviewerName != nil && *review.ReviewerName != "" {
		reviewer = *review.ReviewerName
	}
	fmt.Fprintf(b, "- Reviewer: %s\n", reviewer)

	fmt.Fprintf(b, "- Categories: %s\n", formatCategories(review.Categories))
	fmt.Fprintf(b, "- Review: %s\n", review.ReviewText)
}

// formatCategories flattens a category map into "name: score/5" pairs,
// sorted by name so prompts are deterministic.
func formatCategories(cats models.Categories) string {
	if len(cats) == 0 {
		return "No categories"
	}

	names := make([]string, 0, len(cats))
	for name := range cats {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		score := strconv.FormatFloat(cats[name], 'f', -1, 64)
		parts = append(parts, fmt.Sprintf("%s: %s/5", name, score))
	}
	return strings.Join(parts, ", ")
}

// intOrUnknown renders an optional numeric ship attribute.
func intOrUnknown(v *int) string {
	if v == nil {
		return "Unknown"
	}
	return strconv.Itoa(*v)
}
