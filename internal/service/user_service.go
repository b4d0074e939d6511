package service

import (
	"fmt"
	"time"

	"Club_Community/internal/model"
	"Club_Community/internal/pkg"
	"Club_Community/internal/pkg/errs"
	"Club_Community/internal/repository/mysql"
	"Club_Community/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLen = 8

// 三方登录生成用户名/邮箱时的最大尝试次数
const maxSuffixAttempts = 100

type UserService struct {
	db               *gorm.DB
	repo             *mysql.UserRepository
	rUser            *redis.UserRepository
	defaultCommunity string
}

func NewUserService(db *gorm.DB, defaultCommunity string) *UserService {
	return &UserService{
		db:               db,
		repo:             &mysql.UserRepository{DB: db},
		rUser:            &redis.UserRepository{},
		defaultCommunity: defaultCommunity,
	}
}

// Register 建号并自动加入默认社区（role=member），同一事务
func (s *UserService) Register(email, username, password string, phone *string) (*model.User, error) {
	if email == "" || username == "" {
		return nil, errs.Validation("email and username required")
	}
	if len(password) < minPasswordLen {
		return nil, errs.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("hash password failed")
	}

	user := &model.User{
		Email:    email,
		Phone:    phone,
		Username: username,
		Password: string(hash),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return s.enrolDefaultCommunity(tx, user.ID)
	})
	if err != nil {
		if mysql.IsDuplicate(err) {
			return nil, errs.Conflict("email, phone or username already registered")
		}
		return nil, errs.Internal("register failed")
	}
	return user, nil
}

// Login 标识符为邮箱或手机号；账号不存在与密码错误返回同一错误
func (s *UserService) Login(identifier, password string) (*model.User, *pkg.Pair, error) {
	user, err := s.repo.FindByIdentifier(identifier)
	if err != nil {
		return nil, nil, errs.Unauthorized("invalid identifier or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, errs.Unauthorized("invalid identifier or password")
	}

	pair, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, nil, errs.Internal("issue token failed")
	}
	if err = s.rUser.AddUserToken(user.ID, pair.AccessToken); err != nil {
		return nil, nil, errs.Internal("store token failed")
	}
	return user, pair, nil
}

// WeChatLogin 按 wechat_id 找号，不存在则建号并加入默认社区。
// 用户名/邮箱冲突时追加数字后缀，最多尝试 maxSuffixAttempts 次。
func (s *UserService) WeChatLogin(wechatID, nickname, avatarURL string) (*model.User, *pkg.Pair, error) {
	if wechatID == "" {
		return nil, nil, errs.Validation("wechat_id required")
	}

	user, err := s.repo.FindByWeChatID(wechatID)
	if err != nil && !mysql.IsNotFound(err) {
		return nil, nil, errs.Internal("lookup failed")
	}

	if mysql.IsNotFound(err) {
		user, err = s.createWeChatUser(wechatID, nickname, avatarURL)
		if err != nil {
			return nil, nil, err
		}
	}

	pair, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, nil, errs.Internal("issue token failed")
	}
	if err = s.rUser.AddUserToken(user.ID, pair.AccessToken); err != nil {
		return nil, nil, errs.Internal("store token failed")
	}
	return user, pair, nil
}

func (s *UserService) createWeChatUser(wechatID, nickname, avatarURL string) (*model.User, error) {
	base := nickname
	if base == "" {
		if len(wechatID) > 8 {
			base = "wechat_" + wechatID[:8]
		} else {
			base = "wechat_" + wechatID
		}
	}

	username, err := s.freeUsername(base)
	if err != nil {
		return nil, err
	}
	email, err := s.freeEmail(wechatID)
	if err != nil {
		return nil, err
	}

	// 随机且不可复用的占位密码
	randPassword, err := pkg.RandToken(32)
	if err != nil {
		return nil, errs.Internal("generate password failed")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(randPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("hash password failed")
	}

	user := &model.User{
		Email:          email,
		Username:       username,
		WeChatID:       &wechatID,
		Password:       string(hash),
		ProfilePicture: avatarURL,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return s.enrolDefaultCommunity(tx, user.ID)
	})
	if err != nil {
		if mysql.IsDuplicate(err) {
			return nil, errs.Conflict("wechat account already registered")
		}
		return nil, errs.Internal("register failed")
	}
	return user, nil
}

func (s *UserService) freeUsername(base string) (string, error) {
	candidate := base
	for i := 1; i <= maxSuffixAttempts; i++ {
		taken, err := s.repo.UsernameTaken(candidate)
		if err != nil {
			return "", errs.Internal("lookup failed")
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
	return "", errs.Conflict("unable to allocate username")
}

func (s *UserService) freeEmail(wechatID string) (string, error) {
	candidate := wechatID + "@wechat.local"
	for i := 1; i <= maxSuffixAttempts; i++ {
		taken, err := s.repo.EmailTaken(candidate)
		if err != nil {
			return "", errs.Internal("lookup failed")
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s+%d@wechat.local", wechatID, i)
	}
	return "", errs.Conflict("unable to allocate email")
}

// enrolDefaultCommunity 默认社区存在则落一条 member 会籍；不存在则跳过
func (s *UserService) enrolDefaultCommunity(tx *gorm.DB, userID uint64) error {
	var community model.Community
	err := tx.Where("name = ?", s.defaultCommunity).First(&community).Error
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil
		}
		return err
	}
	no, err := pkg.MembershipNo(time.Now())
	if err != nil {
		return err
	}
	return tx.Create(&model.Membership{
		UserID:       userID,
		CommunityID:  community.ID,
		MembershipNo: no,
		Status:       model.MembershipActive,
		Role:         model.RoleMember,
	}).Error
}

func (s *UserService) Logout(userID uint64) error {
	if err := s.rUser.DeleteUserToken(userID); err != nil {
		return errs.Internal("logout failed")
	}
	return nil
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, errs.Unauthorized("invalid or expired refresh token")
	}
	return pair, nil
}

func (s *UserService) Get(id uint64) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("user not found")
		}
		return nil, errs.Internal("lookup failed")
	}
	return user, nil
}

func (s *UserService) List() ([]model.User, error) {
	list, err := s.repo.List()
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

// UpdateProfile 部分更新；一个可识别字段都没有时报错，不做静默 no-op
func (s *UserService) UpdateProfile(id uint64, username, bio, profilePicture *string) (*model.User, error) {
	fields := map[string]any{}
	if username != nil {
		if *username == "" {
			return nil, errs.Validation("username cannot be empty")
		}
		fields["username"] = *username
	}
	if bio != nil {
		fields["bio"] = *bio
	}
	if profilePicture != nil {
		fields["profile_picture"] = *profilePicture
	}
	if len(fields) == 0 {
		return nil, errs.Validation("no fields to update")
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("user not found")
		}
		if mysql.IsDuplicate(err) {
			return nil, errs.Conflict("username already taken")
		}
		return nil, errs.Internal("update failed")
	}
	return s.Get(id)
}
