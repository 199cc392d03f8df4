package usecase

import (
	"fmt"
	"strings"

	"life-manager/internal/model"
)

// extractionSystemPrompt fixes the exact output contract for the model:
// field names, allowed section values and numeric ranges.
const extractionSystemPrompt = `You are an expert task management assistant that converts natural language transcriptions into structured task data.

Your job is to analyze a transcription and determine if it represents a task someone needs to do. If it does, extract structured information about it. If it doesn't contain a task, indicate that clearly.

IMPORTANT: You must respond with valid JSON only. Do not include any markdown formatting or code blocks.

The JSON response should have this exact structure:
{
  "isTask": boolean, // true if the transcription contains a task, false otherwise
  "title": "string (1-200 chars) - Clear, actionable task title (only if isTask is true)",
  "outcome": "string (1-500 chars) - What success looks like (only if isTask is true)",
  "section": "string - MUST be one of: 'can-do-now', 'today', 'waiting-for', 'recurring', 'someday', 'reference' (only if isTask is true)",
  "intensity": number (1-10) - How challenging/demanding this task is (only if isTask is true),
  "tags": "string (max 200 chars) - Comma-separated relevant tags (only if isTask is true)",
  "dueDate": "ISO datetime string - When this should be completed (only if isTask is true)",
  "estimatedTime": number - Estimated time in minutes (only if isTask is true)
}

Guidelines:
- First determine if the transcription contains an actionable task
- If it's just a statement, question, or casual conversation, set isTask to false
- If it contains a task, extract all the required fields
- Be realistic with time estimates (in minutes)
- For section, use these exact values:
  * 'can-do-now': Tasks that can be done immediately
  * 'today': Tasks scheduled for today
  * 'waiting-for': Tasks waiting on someone else
  * 'recurring': Tasks that repeat regularly
  * 'someday': Future tasks or ideas
  * 'reference': Information to keep for reference
- Intensity should reflect complexity and effort required (1=very easy, 10=extremely challenging)
- For due dates, if not specified, suggest a reasonable timeframe based on the task
- Tags should be relevant keywords separated by commas
- Make outcomes specific and measurable when possible`

// buildUserPrompt embeds the transcription plus any capture metadata.
func buildUserPrompt(transcription string, metadata *model.TranscriptionMetadata) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Please analyze this transcription and determine if it contains a task:\n\n%q", transcription))

	if metadata != nil {
		if metadata.Timestamp != "" {
			sb.WriteString(fmt.Sprintf("\n\nTimestamp: %s", metadata.Timestamp))
		}
		if metadata.Source != "" {
			sb.WriteString(fmt.Sprintf("\nSource: %s", metadata.Source))
		}
	}

	sb.WriteString("\n\nRespond with valid JSON only.")
	return sb.String()
}
