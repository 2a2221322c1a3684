package dynamo

// DynamoDB attribute names used in key conditions and update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldUserID         = "user_id"
	fieldEmail          = "email"
	fieldBlogID         = "blog_id"
	fieldCommentID      = "comment_id"
	fieldNotificationID = "notification_id"
	fieldCreatedAt      = "created_at"
	fieldUpdatedAt      = "updated_at"
	fieldIsPublished    = "is_published"
	fieldViewCount      = "view_count"
	fieldSeen           = "seen"
	fieldProfilePhoto   = "profile_photo"
	fieldActorID        = "actor_id"
	fieldTargetID       = "target_id"
)

// GSI names.
const (
	indexEmail                = "email-index"
	indexUserCreated          = "user_id-created_at-index"
	indexBlogCreated          = "blog_id-created_at-index"
	indexTargetID             = "target_id-index"
	emailClaimPrefix          = "email#"
	batchGetMaxKeys           = 100
	batchGetMaxUnprocessedTry = 3
)
