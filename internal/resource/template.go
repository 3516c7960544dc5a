package resource

// ATSResumeTemplate is the starting document handed out when a user has no
// resume yet. Bracketed fields are placeholders the assistant fills in as it
// learns about the user.
const ATSResumeTemplate = `# [Full Name]

[City, State] | [Phone Number] | [Email Address] | [LinkedIn URL]

## Professional Summary

[2-3 sentences summarizing your experience, key skills, and career goals.]

## Professional Experience

### [Job Title] | [Company Name]
[Start Date] - [End Date]

- [Accomplishment with measurable impact]
- [Accomplishment with measurable impact]
- [Responsibility or project highlight]

## Education

### [Degree] | [Institution Name]
[Graduation Year]

## Skills

- [Skill Category]: [Skill 1], [Skill 2], [Skill 3]
- [Skill Category]: [Skill 1], [Skill 2], [Skill 3]

## Certifications

- [Certification Name], [Issuing Organization], [Year]
`
